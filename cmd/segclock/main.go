// Command segclock runs the synchronous seven-segment clock simulation.
package main

func main() {
	Execute()
}
