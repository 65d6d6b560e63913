// Command rexec-demo drives the workspace Command Execution API end to
// end: it opens an execution context on a cluster, runs an R snippet,
// optionally scores a registry model, and tears the context down again.
package main

func main() {
	execute()
}
