package main

// General API documentation for swaggo. The served document lives in
// internal/httpapi/swagger.go and is enabled with -tags=swagger.
//
// @title           notifyd API
// @version         1.0
// @description     HTTP front for the in-process notification bus.
//
// @BasePath  /
//
// @schemes http
