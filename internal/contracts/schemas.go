package contracts

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"log"
	"strings"

	"real-estate-agency/internal/contracts/schemas"
	"real-estate-agency/internal/core/domain"

	"github.com/santhosh-tekuri/jsonschema/v5"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// Ключи схем входных данных
const (
	ListingCreatePayload = "ListingCreatePayload/1.0.0"
	ListingUpdatePayload = "ListingUpdatePayload/1.0.0"
)

const (
	schemasRoot   = "payloads"
	schemaBaseURL = "https://real-estate-agency.local/schemas/"
)

var compiledSchemas = make(map[string]*jsonschema.Schema)

func init() {
	compiler := jsonschema.NewCompiler()
	compiler.AssertFormat = true

	// Сначала регистрируем все файлы как ресурсы, чтобы работали $ref между ними
	var paths []string
	err := fs.WalkDir(schemas.SchemasFS, schemasRoot, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() || !strings.HasSuffix(path, ".json") {
			return nil
		}
		data, err := fs.ReadFile(schemas.SchemasFS, path)
		if err != nil {
			return err
		}
		if err := compiler.AddResource(schemaBaseURL+path, bytes.NewReader(data)); err != nil {
			return fmt.Errorf("add schema resource %s: %w", path, err)
		}
		paths = append(paths, path)
		return nil
	})
	if err != nil {
		log.Fatalf("error walking and adding schema resources: %v", err)
	}

	for _, path := range paths {
		schema, err := compiler.Compile(schemaBaseURL + path)
		if err != nil {
			log.Fatalf("could not compile schema %s: %v", path, err)
		}
		compiledSchemas[generateKeyFromPath(path)] = schema
	}
}

// generateKeyFromPath: "payloads/listing-create/v1.json" -> "ListingCreatePayload/1.0.0"
func generateKeyFromPath(path string) string {
	trimmed := strings.TrimPrefix(path, schemasRoot+"/")
	trimmed = strings.TrimSuffix(trimmed, ".json")

	parts := strings.Split(trimmed, "/")
	if len(parts) != 2 {
		return ""
	}

	caser := cases.Title(language.English)
	var name strings.Builder
	for _, p := range strings.Split(parts[0], "-") {
		name.WriteString(caser.String(p))
	}
	name.WriteString("Payload")

	version := strings.TrimPrefix(parts[1], "v") + ".0.0"
	return name.String() + "/" + version
}

// Validate проверяет тело запроса по схеме. Ошибки данных возвращаются как
// *domain.ValidationError с разбивкой по полям.
func Validate(key string, body []byte) error {
	schema, ok := compiledSchemas[key]
	if !ok {
		return fmt.Errorf("schema '%s' not found", key)
	}

	var v interface{}
	if err := json.Unmarshal(body, &v); err != nil {
		return &domain.ValidationError{Fields: []domain.FieldError{
			{Field: "body", Message: "body is not a valid JSON"},
		}}
	}

	err := schema.Validate(v)
	if err == nil {
		return nil
	}

	var ve *jsonschema.ValidationError
	if !errors.As(err, &ve) {
		return fmt.Errorf("JSON schema validation failed: %w", err)
	}
	return &domain.ValidationError{Fields: collectFieldErrors(ve, nil)}
}

// collectFieldErrors собирает листья дерева ошибок
func collectFieldErrors(ve *jsonschema.ValidationError, acc []domain.FieldError) []domain.FieldError {
	if len(ve.Causes) == 0 {
		return append(acc, domain.FieldError{
			Field:   fieldFromPointer(ve.InstanceLocation),
			Message: ve.Message,
		})
	}
	for _, cause := range ve.Causes {
		acc = collectFieldErrors(cause, acc)
	}
	return acc
}

// fieldFromPointer: "/features/0" -> "features.0", "" -> "body"
func fieldFromPointer(ptr string) string {
	ptr = strings.TrimPrefix(ptr, "/")
	if ptr == "" {
		return "body"
	}
	return strings.ReplaceAll(ptr, "/", ".")
}
