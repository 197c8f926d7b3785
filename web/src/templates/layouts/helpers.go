package layouts

// CalculateTitle builds the document title from the page title and the
// business name.
func CalculateTitle(title, siteName string) string {
	switch {
	case siteName == "":
		return title
	case title == "" || title == siteName:
		return siteName
	default:
		return title + " | " + siteName
	}
}

// Canonical joins the site origin and a site-relative path.
func Canonical(origin, path string) string {
	if path == "" {
		path = "/"
	}
	return origin + path
}
