package scaffold

import (
	"fmt"

	"github.com/vnite-labs/create-vnite-plugin/internal/plugin"
)

// Readme renders the README written into every generated plugin.
func Readme(a *plugin.Answers) string {
	return fmt.Sprintf("# %s\n\n%s\n\n## Developer\n\n%s\n\n## Packaging\n\n"+
		"```bash\nnpm install\n\nnpm run pack\n```\n\n## License\n\n%s\n",
		a.Name, a.Description, a.Author, a.License)
}
