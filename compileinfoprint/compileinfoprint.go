// compileinfoprint is imported for the side effect of printing the build
// banner to os.Stderr when a binary starts.
package compileinfoprint

import (
	"os"

	"github.com/carbocation/contigcov/compileinfo"
)

func init() {
	compileinfo.Fprint(os.Stderr)
}
