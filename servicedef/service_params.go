package servicedef

// Resource paths, relative to the API prefix.
const (
	PathDashboardStats      = "dashboard/stats"
	PathActivities          = "activities"
	PathConstructions       = "constructions"
	PathConstructionsSearch = "constructions/search"
	PathInspections         = "inspections"
	PathPayments            = "payments"
	PathLicenses            = "licenses"
	PathWorkPlans           = "workplans"
	PathUsers               = "users"
	PathCompanies           = "companies"
)

// CreateInspectionParams is the body for creating a site inspection (Saha Denetimi).
type CreateInspectionParams struct {
	DenetimTarihi      string `json:"denetimTarihi"`
	KontrolEdilenBolum string `json:"kontrolEdilenBolum"`
	InsaatIsmi         string `json:"insaatIsmi"`
	YibfNo             string `json:"yibfNo"`
	Ilce               string `json:"ilce"`
}

// CreatePaymentParams is the body for creating a progress payment (Hakediş).
type CreatePaymentParams struct {
	InsaatIsmi    string `json:"insaatIsmi"`
	YibfNo        string `json:"yibfNo"`
	HakedisNo     string `json:"hakedisNo"`
	HakedisTipi   string `json:"hakedisTipi"`
	HakedisDurumu string `json:"hakedisDurumu"`
	Eksik         string `json:"eksik"`
}

// CreateLicenseParams is the body for creating a license and project tracking record (Ruhsat).
type CreateLicenseParams struct {
	InsaatIsmi             string `json:"insaatIsmi"`
	YibfNo                 string `json:"yibfNo"`
	YapiSahibiTapu         bool   `json:"yapiSahibiTapu"`
	YapiMuteahhitiSozlesme bool   `json:"yapiMuteahhitiSozlesme"`
	BelediyeRuhsat         bool   `json:"belediyeRuhsat"`
}
