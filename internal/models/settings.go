package models

// AppSettings berisi konfigurasi kosmetik aplikasi.
// Nama field JSON sama persis dengan dokumen 'app_settings' lama.
type AppSettings struct {
	// General
	AppName        string `json:"appName" validate:"required"`
	AppDescription string `json:"appDescription"`
	AppVersion     string `json:"appVersion" validate:"required"`

	// Financial
	MinTopupAmount       float64 `json:"minTopupAmount" validate:"gte=0"`
	MaxTopupAmount       float64 `json:"maxTopupAmount" validate:"gtefield=MinTopupAmount"`
	MinSaldoLimit        float64 `json:"minSaldoLimit" validate:"gte=0"`
	ServiceFeePercentage float64 `json:"serviceFeePercentage" validate:"gte=0,lte=100"`

	// User
	AutoVerifyUsers          bool `json:"autoVerifyUsers"`
	AllowGuestCheckout       bool `json:"allowGuestCheckout"`
	RequirePhoneVerification bool `json:"requirePhoneVerification"`

	// Mitra
	AutoVerifyMitras          bool    `json:"autoVerifyMitras"`
	MitraCommissionPercentage float64 `json:"mitraCommissionPercentage" validate:"gte=0,lte=100"`
	MinMitraRating            float64 `json:"minMitraRating" validate:"gte=0,lte=5"`

	// Notification
	EnableEmailNotifications bool `json:"enableEmailNotifications"`
	EnableSMSNotifications   bool `json:"enableSMSNotifications"`
	EnablePushNotifications  bool `json:"enablePushNotifications"`

	// Maintenance
	MaintenanceMode    bool   `json:"maintenanceMode"`
	MaintenanceMessage string `json:"maintenanceMessage"`

	// Security
	SessionTimeout        int  `json:"sessionTimeout" validate:"gte=1"`
	MaxLoginAttempts      int  `json:"maxLoginAttempts" validate:"gte=1"`
	RequireStrongPassword bool `json:"requireStrongPassword"`
}

// DefaultAppSettings adalah nilai bawaan sebelum admin menyimpan apapun
func DefaultAppSettings() AppSettings {
	return AppSettings{
		AppName:                   "SmartCare",
		AppDescription:            "Platform layanan smartcare terpercaya",
		AppVersion:                "1.0.0",
		MinTopupAmount:            10000,
		MaxTopupAmount:            10000000,
		MinSaldoLimit:             5000,
		ServiceFeePercentage:      5,
		AutoVerifyUsers:           false,
		AllowGuestCheckout:        true,
		RequirePhoneVerification:  true,
		AutoVerifyMitras:          false,
		MitraCommissionPercentage: 15,
		MinMitraRating:            4.0,
		EnableEmailNotifications:  true,
		EnableSMSNotifications:    false,
		EnablePushNotifications:   true,
		MaintenanceMode:           false,
		MaintenanceMessage:        "Sistem sedang dalam perbaikan. Mohon tunggu beberapa saat.",
		SessionTimeout:            60,
		MaxLoginAttempts:          3,
		RequireStrongPassword:     true,
	}
}
