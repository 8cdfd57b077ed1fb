package handlers

import "expvar"

// Counters published on /debug/vars.
var (
	articlesSaved   = expvar.NewInt("articles_saved")
	articlesDeleted = expvar.NewInt("articles_deleted")
	commentsPosted  = expvar.NewInt("comments_posted")
	registrations   = expvar.NewInt("registrations")
	loginsSucceeded = expvar.NewInt("logins_succeeded")
	loginsFailed    = expvar.NewInt("logins_failed")
)
