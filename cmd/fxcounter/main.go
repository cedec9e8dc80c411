package main

import "os"

// @title Foreign Currency Counter API
// @version 1.0
// @description Customer capture, exchange line items and receipts for a money changer counter.

// @host localhost:8080
// @BasePath /api/v1
func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
