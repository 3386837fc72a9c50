package config

import (
	"strings"

	gotoml "github.com/pelletier/go-toml/v2"

	"github.com/tnoble/aliashdr/pkg/errors"
)

// GenerateConfigContent renders the default configuration as TOML with every
// value commented out, suitable as a starting point for a .aliashdr.toml.
func GenerateConfigContent() (string, error) {
	raw, err := gotoml.Marshal(Default())
	if err != nil {
		return "", errors.Wrap(err, errors.ErrInternal, "failed to marshal default config")
	}

	header := "# aliashdr configuration. Uncomment values to override the defaults.\n"
	return header + commentOutConfigValues(string(raw)), nil
}

// commentOutConfigValues comments out every assignment line, leaving blank
// lines and existing comments untouched.
func commentOutConfigValues(content string) string {
	lines := strings.Split(content, "\n")
	var result []string

	for _, line := range lines {
		trimmed := strings.TrimSpace(line)

		if trimmed == "" || strings.HasPrefix(trimmed, "#") {
			result = append(result, line)
			continue
		}

		result = append(result, "# "+line)
	}

	return strings.Join(result, "\n")
}
