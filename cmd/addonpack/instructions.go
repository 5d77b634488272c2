// SPDX-License-Identifier: MPL-2.0

package cmd

import (
	"fmt"

	"github.com/br5secrule/addonpack/internal/config"
	"github.com/br5secrule/addonpack/pkg/addon"

	"github.com/charmbracelet/glamour"
)

var renderMarkdown = glamour.Render

// installGuideMarkdown returns the installation steps for a built addon.
func installGuideMarkdown(m *addon.Manifest) string {
	return fmt.Sprintf(`## Installation instructions

1. Extract %s to your WoW/Interface/AddOns/ directory
2. Ensure the folder is named "%s"
3. Restart WoW or type /reload
`, m.ArchiveName(), m.Name)
}

func renderInstallGuide(m *addon.Manifest, scheme config.ColorScheme) (string, error) {
	return renderMarkdown(installGuideMarkdown(m), scheme.String())
}
