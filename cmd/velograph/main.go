// Command velograph pulls a Strava activity history, derives commute
// statistics, and renders reports and charts.
package main

import "github.com/velograph/velograph/pkg/cli"

func main() {
	cli.Execute()
}
