package archive

import (
	"fmt"

	"github.com/huangsam/gridiron/schema"
)

// PrintStatus prints archive status information.
func PrintStatus(status *Status) {
	fmt.Printf("Archive Backend: %s\n", status.Backend)
	if status.Backend == schema.NoneBackend {
		fmt.Println("Archiving is disabled.")
		return
	}
	fmt.Printf("Total Ratings: %d\n", status.TotalRows)
	if status.TotalRows > 0 {
		fmt.Printf("Seasons Covered: %d\n", status.Seasons)
		fmt.Printf("Last Saved: %s\n", status.LastSaved.Format("2006-01-02 15:04:05"))
	}
}
