package main

import "github.com/qalab/employee-directory/cmd"

// @title                       Employee Directory API
// @version                     1.0
// @description                 Session-authenticated employee directory with QA fault injection.
// @BasePath                    /
// @securityDefinitions.apikey  SessionCookie
// @in                          cookie
// @name                        session
func main() {
	cmd.Execute()
}
