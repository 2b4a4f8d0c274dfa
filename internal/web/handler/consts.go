package handler

const (
	// BaseLayout is the default path for layout templates.
	BaseLayout = "layouts/base"

	// RootPath is the root path the route group.
	RootPath = "/"

	// ErrNilACDFatalLogMsg is used if app or cfg or deps var pointer is nil.
	ErrNilACDFatalLogMsg = "app, cfg or deps is nil"

	// LocalsSite is the fiber.Locals key of the request *site.Context.
	LocalsSite = "site"

	// CookieLanguage stores the visitor's language choice.
	CookieLanguage = "lang"

	// CookieTheme stores the visitor's theme choice.
	CookieTheme = "theme"
)
