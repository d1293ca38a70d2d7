package httpx

// SessionCookieName is the cookie carrying the signed session reference.
const SessionCookieName = "recruiter_session"

// Browser-facing paths.
const (
	PathLogin     = "/login"
	PathLogout    = "/logout"
	PathDashboard = "/dashboard"
	PathStatus    = "/auth/status"
	PathSettings  = "/api/recruitment-bot/settings"
)

// Query parameters understood by the login page.
const (
	queryRedirect = "redirect_uri"
	queryFailed   = "failed"
)

// Embedded page files under frontend/pages.
const (
	pageLogin     = "login.html"
	pageDashboard = "dashboard.html"
)

// maxBodyBytes bounds login and settings request bodies.
const maxBodyBytes = 64 << 10
