package apitests

import (
	"fmt"
	"net/http"
	"net/url"

	"github.com/batlama/inspection-api-contract-tests/servicedef"
)

type resource struct {
	path   string
	noun   string
	plural string
}

var (
	constructions = resource{path: servicedef.PathConstructions, noun: "construction", plural: "constructions"}
	inspections   = resource{path: servicedef.PathInspections, noun: "inspection", plural: "inspections"}
	payments      = resource{path: servicedef.PathPayments, noun: "payment", plural: "payments"}
	licenses      = resource{path: servicedef.PathLicenses, noun: "license", plural: "licenses"}
	workPlans     = resource{path: servicedef.PathWorkPlans, noun: "work plan", plural: "work plans"}
	users         = resource{path: servicedef.PathUsers, noun: "user", plural: "users"}
	companies     = resource{path: servicedef.PathCompanies, noun: "company", plural: "companies"}
	activities    = resource{path: servicedef.PathActivities, noun: "activity", plural: "activities"}
)

// These are sent exactly as written on every run, so that the records they create are easy to
// recognize if cleanup does not happen.
var (
	testInspection = servicedef.CreateInspectionParams{
		DenetimTarihi:      "2025-01-15",
		KontrolEdilenBolum: "Temel Kontrolü",
		InsaatIsmi:         "Test İnşaat",
		YibfNo:             "TEST-001",
		Ilce:               "Test İlçe",
	}
	testPayment = servicedef.CreatePaymentParams{
		InsaatIsmi:    "Test İnşaat",
		YibfNo:        "TEST-001",
		HakedisNo:     "H-001",
		HakedisTipi:   "Ara Hakediş",
		HakedisDurumu: "Hazırlanacak",
		Eksik:         "Eksik Yok",
	}
	testLicense = servicedef.CreateLicenseParams{
		InsaatIsmi:             "Test İnşaat",
		YibfNo:                 "TEST-001",
		YapiSahibiTapu:         true,
		YapiMuteahhitiSozlesme: true,
		BelediyeRuhsat:         false,
	}
)

func doListTest(t *T, name string, r resource) {
	t.Run(name, func(t *T) {
		resp := t.RequireProbe(http.MethodGet, r.path, nil)
		t.Detailf("Found %d %s", resp.Count(), r.plural)
	})
}

// doCreateTest posts a new record. If the service returns its ID, the record is remembered so
// that DoCleanup can delete it.
func doCreateTest(t *T, r resource, params interface{}) {
	t.Run("Create "+r.noun, func(t *T) {
		resp := t.RequireProbe(http.MethodPost, r.path, params)
		id, ok := resp.ID()
		if !ok {
			t.Detailf("Creation attempted")
			return
		}
		t.env.created = append(t.env.created, createdRecord{resource: r, id: id})
		t.Detailf("Created %s ID: %s", r.noun, id)
	})
}

func DoConstructionTests(t *T) {
	doListTest(t, "Get constructions list", constructions)

	t.Run("Search constructions", func(t *T) {
		query := url.Values{"q": {"test"}}
		resp := t.RequireProbe(http.MethodGet, servicedef.PathConstructionsSearch+"?"+query.Encode(), nil)
		t.Detailf("Search results: %d", resp.Count())
	})
}

func DoInspectionTests(t *T) {
	doListTest(t, "Get inspections list", inspections)
	doCreateTest(t, inspections, testInspection)
}

func DoPaymentTests(t *T) {
	doListTest(t, "Get payments list", payments)
	doCreateTest(t, payments, testPayment)
}

func DoLicenseTests(t *T) {
	doListTest(t, "Get licenses list", licenses)
	doCreateTest(t, licenses, testLicense)
}

func DoWorkPlanTests(t *T) {
	doListTest(t, "Get work plans list", workPlans)
}

// DoUserManagementTests lists users, which only administrators may do. For anyone else a
// failure is recorded without making the request.
func DoUserManagementTests(t *T) {
	if !t.Session().IsPrivileged() {
		t.Run("User management access", func(t *T) {
			t.Detailf("User role: %s", t.Session().Role())
			t.RequirePrivilegedSession("Insufficient permissions for user management")
		})
		return
	}
	doListTest(t, "Get users list", users)
}

func DoCompanyTests(t *T) {
	doListTest(t, "Get companies list", companies)
}

func DoActivityTests(t *T) {
	doListTest(t, "Get activity logs", activities)
}

func deletePath(r resource, id string) string {
	return fmt.Sprintf("%s/%s", r.path, url.PathEscape(id))
}
