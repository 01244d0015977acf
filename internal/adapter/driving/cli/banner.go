package cli

import (
	"fmt"

	"github.com/diillson/segment-report-go/pkg/version"
	"github.com/fatih/color"
)

// displayWelcomeBanner exibe o banner de boas-vindas com informações de versão.
func displayWelcomeBanner(versionStr string) {
	banner := `
         ____                                  _     ____                       _   
        / ___|  ___  __ _ _ __ ___   ___ _ __ | |_  |  _ \ ___ _ __   ___  _ __| |_ 
        \___ \ / _ \/ _` + "`" + ` | '_ ` + "`" + ` _ \ / _ \ '_ \| __| | |_) / _ \ '_ \ / _ \| '__| __|
         ___) |  __/ (_| | | | | | |  __/ | | | |_  |  _ <  __/ |_) | (_) | |  | |_ 
        |____/ \___|\__, |_| |_| |_|\___|_| |_|\__| |_| \_\___| .__/ \___/|_|   \__|
                    |___/                                     |_|                   
        `
	green := color.New(color.FgGreen, color.Bold).SprintFunc()
	blue := color.New(color.FgBlue, color.Bold).SprintFunc()

	fmt.Println(green(banner))

	// Obtem a string formatada da versão através do pacote version
	formattedVersion := version.FormatVersion()
	fmt.Println(blue(fmt.Sprintf("Segment Report CLI (v%s)", formattedVersion)))
}
