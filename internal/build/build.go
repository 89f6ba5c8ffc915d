package build

// Version is dynamically set by the toolchain or overridden at link time.
var Version = "DEV"

// Date is dynamically set at build time via ldflags.
var Date = ""
