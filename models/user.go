package models

// NotificationSettings are two independent per-user toggles. A nil pointer
// means the flag was never written and the toggle is enabled.
type NotificationSettings struct {
	Push *bool `mapstructure:"push"`
	News *bool `mapstructure:"news"`
}

// User is a typed partial snapshot of a user document.
type User struct {
	Role                 string                `mapstructure:"role"`
	FCMToken             string                `mapstructure:"fcmToken"`
	ApplicationStatus    string                `mapstructure:"applicationStatus"`
	FullName             string                `mapstructure:"fullName"`
	Email                string                `mapstructure:"email"`
	Album                string                `mapstructure:"album"`
	NotificationSettings *NotificationSettings `mapstructure:"notificationSettings"`
}

// PushEnabled reports whether the user accepts pushes at all. Only an
// explicit false disables delivery.
func (u *User) PushEnabled() bool {
	if u.NotificationSettings == nil || u.NotificationSettings.Push == nil {
		return true
	}
	return *u.NotificationSettings.Push
}

// NewsEnabled reports whether the user accepts announcement pushes.
func (u *User) NewsEnabled() bool {
	if u.NotificationSettings == nil || u.NotificationSettings.News == nil {
		return true
	}
	return *u.NotificationSettings.News
}

// DecodeUser decodes a raw user snapshot. A nil map yields a nil user.
func DecodeUser(data map[string]interface{}) (*User, error) {
	if data == nil {
		return nil, nil
	}
	var u User
	if err := decodeSnapshot(data, &u); err != nil {
		return nil, err
	}
	return &u, nil
}
