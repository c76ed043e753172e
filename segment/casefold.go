package segment

import "golang.org/x/text/cases"

var caseFolder = cases.Fold()

func casefold(text string) string {
	return caseFolder.String(text)
}
