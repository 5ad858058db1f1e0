package main

import "github.com/tds-django/sqlregex/internal/cmd"

func main() {
	cmd.Execute()
}
