// Command ngcorex compiles design tokens into a stylesheet of CSS custom
// properties.
package main

func main() {
	Execute()
}
