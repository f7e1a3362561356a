package recast

import (
	"fmt"

	"go.followtheprocess.codes/recast/internal/body"
)

// Formats implements the formats subcommand, printing every supported format
// short name and its wire media type.
func (r Recast) Formats() error {
	for _, format := range body.Formats() {
		fmt.Fprintf(r.stdout, "%s  %s\n", headerKeyStyle.Text(fmt.Sprintf("%-5s", format.Name)), format.MediaType)
	}

	return nil
}
