package runner

import (
	"github.com/projectdiscovery/gologger"

	"github.com/nordpick/nordpick/pkg/version"
)

var banner = `
                       __      _      __
   ____  ____  _______/ /___  (_)____/ /__
  / __ \/ __ \/ ___/ __  / __ \/ / ___/ //_/
 / / / / /_/ / /  / /_/ / /_/ / / /__/ ,<
/_/ /_/\____/_/   \__,_/ .___/_/\___/_/|_|
                      /_/          ` + version.GetVersion()

// showBanner prints the banner to the user
func showBanner() {
	gologger.Print().Msgf("%s\n\n", banner)
}
