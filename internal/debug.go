package internal

import (
	"log"
	"os"
	"regexp"
	"sort"
	"strings"

	"github.com/earthboundkid/versioninfo/v2"
)

const EnvPrefix = "ICON_"

func Version() string {
	return versioninfo.Short()
}

func ShowVersion() {
	log.Printf("Version: %s\n", Version())
}

// EnvironmentVars logs the ICON_* overrides in effect, masking values whose
// names suggest a credential.
func EnvironmentVars() {
	log.Println("Environment variables")

	sensitiveRegex := regexp.MustCompile(`(?i)(TOKEN|KEY|SECRET|PASSWORD)`)
	environ := os.Environ()
	sort.Slice(environ, func(i, j int) bool {
		keyI := strings.SplitN(environ[i], "=", 2)[0]
		keyJ := strings.SplitN(environ[j], "=", 2)[0]
		return keyI < keyJ
	})

	for _, entry := range environ {
		kv := strings.SplitN(entry, "=", 2)
		if !strings.HasPrefix(kv[0], EnvPrefix) {
			continue
		}
		if sensitiveRegex.MatchString(kv[0]) {
			log.Printf("  %s: ********\n", kv[0])
		} else {
			log.Printf("  %s: %s\n", kv[0], kv[1])
		}
	}
}
