//go:build tools

package main

// Dependencias de herramientas de desarrollo, no se compilan en los binarios.
// swag genera docs/swagger.json a partir de las anotaciones de los handlers:
//
//	go run github.com/swaggo/swag/cmd/swag init -g cmd/api/main.go -o docs --ot json
import (
	_ "github.com/swaggo/swag/cmd/swag"
)
