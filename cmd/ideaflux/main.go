// Command ideaflux is an AI-assisted proposal triage tool: it grades draft
// proposals for similarity, summarizes projects and proposals, and suggests
// new proposal candidates.
package main

import (
	"github.com/ideaflux/ideaflux/internal/adapters/driving/cli"
)

func main() {
	cli.Execute()
}
