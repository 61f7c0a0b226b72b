package main

import (
	"os"

	"github.com/turbot/owid-covid-dashboard/constants"
	"github.com/turbot/owid-covid-dashboard/logging"
)

func main() {
	logging.Initialize(constants.AppName)
	os.Exit(Execute())
}
