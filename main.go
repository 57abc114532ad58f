package main

import "github.com/maastricht-university/emotion-report/cmd"

func main() {
	cmd.Execute()
}
