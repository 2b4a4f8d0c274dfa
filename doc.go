// Package main provides the entry point of the DSEZA portal. It runs a Fiber
// web server that renders the public website of the Da Nang hi-tech park and
// industrial zones authority: a menu bar with mega-menu panels, a news
// section filtered by category and a media resources section with tabs.
// Content is kept in a gorm database and seeded from YAML on first start.
package main
