// Package main Tillbook API
//
//	@title			Tillbook API
//	@version		1.0.0
//	@description	Tillbook keeps the categories, customers and currencies of a small shop
//
//	@license.name	Apache 2.0
//	@license.url	http://www.apache.org/licenses/LICENSE-2.0.html
//
//	@host			localhost:3000
//	@BasePath		/api/v1
package main

import "github.com/tillbook/tillbook/internal"

//go:generate swag init --parseDependency --outputTypes go -g ./main.go -o ./internal/server/docs

func main() {
	internal.Run()
}
