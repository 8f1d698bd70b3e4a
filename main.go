package main

import (
	"github.com/lehigh-university-libraries/bibtidy/cmd"
)

func main() {
	cmd.Execute()
}
