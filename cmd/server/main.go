package main

import (
	"github.com/poolwatch/dex-backend/internal/server"
)

// @title DEX Analytics API
// @version 1.0
// @description Pool transaction analytics for the front-end transaction table.
// @BasePath /
func main() {
	server.Init()
}
