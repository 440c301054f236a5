// Package routes defines the remote API endpoint paths the console calls.
package routes

const (
	// Content
	Posts      = "/posts"
	Pages      = "/pages"
	Categories = "/categories"

	// Moderation
	Comments = "/comments"

	// Integrations
	Webhooks = "/webhooks"

	// Newsletter
	Subscribers       = "/subscribers"
	SubscribersExport = "/subscribers/export"

	// Site
	Settings = "/settings"
)
