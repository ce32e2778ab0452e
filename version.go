// version.go

package main

var version = "0.3.1"
