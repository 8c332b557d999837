package main

import "crmquest/cmd/cq/root"

func main() {
	root.Execute()
}
