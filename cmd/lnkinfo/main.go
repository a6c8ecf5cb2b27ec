// Command lnkinfo prints information stored in Windows shell link (.lnk)
// files.
package main

import "os"

func main() {
	os.Exit(execute(os.Args[1:]))
}
