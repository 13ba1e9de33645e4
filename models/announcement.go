package models

// Announcement is a typed partial snapshot of an announcement document.
type Announcement struct {
	Title string `mapstructure:"title"`
	Text  string `mapstructure:"text"`
	Type  string `mapstructure:"type"`
}

// DecodeAnnouncement decodes a raw announcement snapshot.
func DecodeAnnouncement(data map[string]interface{}) (*Announcement, error) {
	if data == nil {
		return nil, nil
	}
	var a Announcement
	if err := decodeSnapshot(data, &a); err != nil {
		return nil, err
	}
	return &a, nil
}

// WhitelistApplication is a typed partial snapshot of an account whitelist
// request.
type WhitelistApplication struct {
	FullName string `mapstructure:"fullName"`
	Email    string `mapstructure:"email"`
	Album    string `mapstructure:"album"`
}

// DecodeWhitelistApplication decodes a raw whitelist application snapshot.
func DecodeWhitelistApplication(data map[string]interface{}) (*WhitelistApplication, error) {
	if data == nil {
		return nil, nil
	}
	var w WhitelistApplication
	if err := decodeSnapshot(data, &w); err != nil {
		return nil, err
	}
	return &w, nil
}

// DebugPush is a typed partial snapshot of a debug push queue document.
type DebugPush struct {
	UserID string `mapstructure:"userId"`
	Title  string `mapstructure:"title"`
	Body   string `mapstructure:"body"`
}

// DecodeDebugPush decodes a raw debug push snapshot.
func DecodeDebugPush(data map[string]interface{}) (*DebugPush, error) {
	if data == nil {
		return nil, nil
	}
	var d DebugPush
	if err := decodeSnapshot(data, &d); err != nil {
		return nil, err
	}
	return &d, nil
}
