package main

// main is the entry point for the dataingest CLI. It invokes Execute,
// defined in root.go, which builds and runs the Cobra root command.
func main() {
	Execute()
}
