package main

// version is overridden at build time with -ldflags "-X main.version=..."
var version = "dev"
