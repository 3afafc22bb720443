package servers

//go:generate go run github.com/oapi-codegen/oapi-codegen/v2/cmd/oapi-codegen -generate types,server,spec -package servers -o server.gen.go ../../../api/openapi.yaml
