package models

// Firm is a typed partial snapshot of a service firm document.
type Firm struct {
	Name       string   `mapstructure:"name"`
	OwnerID    string   `mapstructure:"ownerId"`
	WorkerIDs  []string `mapstructure:"workerIds"`
	Categories []string `mapstructure:"categories"`
}

// DecodeFirm decodes a raw firm snapshot. A nil map yields a nil firm.
func DecodeFirm(data map[string]interface{}) (*Firm, error) {
	if data == nil {
		return nil, nil
	}
	var f Firm
	if err := decodeSnapshot(data, &f); err != nil {
		return nil, err
	}
	return &f, nil
}

// FirmApplication is a typed partial snapshot of a firm's application to
// handle a report.
type FirmApplication struct {
	ReportID string `mapstructure:"reportId"`
	FirmID   string `mapstructure:"firmId"`
}

// DecodeFirmApplication decodes a raw firm application snapshot.
func DecodeFirmApplication(data map[string]interface{}) (*FirmApplication, error) {
	if data == nil {
		return nil, nil
	}
	var a FirmApplication
	if err := decodeSnapshot(data, &a); err != nil {
		return nil, err
	}
	return &a, nil
}
