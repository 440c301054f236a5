package main

import (
	"flag"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/pressmill/console/internal/config"
)

const header = `# Pressmill Console configuration example
# Copy this file to config.yaml and adjust the values. Every key shown here
# carries its default; omitted keys fall back to the same values.

`

// main emits an example YAML config populated with the built-in defaults.
func main() {
	out := flag.String("o", "config.example.yaml", "Output file, or - for stdout")
	flag.Parse()

	cfg := &config.Config{}
	config.ApplyDefaults(cfg)

	yamlData, err := yaml.Marshal(cfg)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error generating YAML: %v\n", err)
		os.Exit(1)
	}
	output := header + string(yamlData)

	if *out == "-" {
		fmt.Print(output)
		return
	}
	if err := os.WriteFile(*out, []byte(output), 0644); err != nil {
		fmt.Fprintf(os.Stderr, "Error writing file: %v\n", err)
		os.Exit(1)
	}
	fmt.Printf("Generated example config: %s\n", *out)
}
