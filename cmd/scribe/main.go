/*
scribe derives indefinite integrals and explains every step.

It applies the standard first-course techniques (power rule, linearity,
trig and exponential forms, u-substitution) and prints the derivation
the way a patient tutor would, as prose and display math.

Usage:

	scribe <command> [arguments]

Common commands:

	scribe explain "x^2"         Print the full derivation
	scribe answer "x^2"          Print just the antiderivative
	scribe view "2*x*exp(x^2)"   Browse the steps interactively
	scribe run sheet.toml        Solve a whole worksheet
	scribe serve                 Start the web interface
	scribe export "x^2"          Export the derivation as a PNG
	scribe history list          Show past solves
	scribe doctor                Check the installation

See 'scribe help <command>' for more information on a specific command.
*/
package main

import (
	"os"

	"github.com/deeklead/scribe/internal/cmd"
)

func main() {
	os.Exit(cmd.Execute())
}
