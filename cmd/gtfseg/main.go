// cmd/gtfseg/main.go
package main

import (
	"gtfseg/internal/app"
	"gtfseg/internal/appshell"
)

func main() {
	appshell.Main(app.RunContext)
}
