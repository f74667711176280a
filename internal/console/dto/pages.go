package dto

// Page is one of the console's view surfaces. The set is closed: the
// UI navigates by page key, and any key outside the set resolves to
// the dashboard rather than an error (the defined default transition).
type Page string

const (
	PageDashboard  Page = "dashboard"
	PageStock      Page = "stock"
	PageTrucks     Page = "trucks"
	PageLoadTrucks Page = "load_trucks"
	PageRoutes     Page = "routes"
)

// ParsePage maps a raw page key to a Page, falling back to the
// dashboard for unknown keys.
func ParsePage(key string) Page {
	switch Page(key) {
	case PageDashboard, PageStock, PageTrucks, PageLoadTrucks, PageRoutes:
		return Page(key)
	default:
		return PageDashboard
	}
}
