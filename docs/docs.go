// Package docs holds the Swagger document served at /swagger, in the layout swag init writes.
package docs

import "github.com/swaggo/swag"

const docTemplate = `{
	"schemes": {{ marshal .Schemes }},
	"swagger": "2.0",
	"info": {
		"description": "{{escape .Description}}",
		"title": "{{.Title}}",
		"contact": {},
		"version": "{{.Version}}"
	},
	"host": "{{.Host}}",
	"basePath": "{{.BasePath}}",
	"paths": {
		"/api/estadisticas/categorias": {
			"get": {
				"security": [
					{
						"ApiKeyAuth": []
					}
				],
				"description": "Category totals, highest first",
				"produces": [
					"application/json"
				],
				"tags": [
					"estadisticas"
				],
				"summary": "Complaints per category",
				"parameters": [
					{
						"type": "string",
						"description": "From date (YYYY-MM-DD)",
						"name": "desde",
						"in": "query"
					},
					{
						"type": "string",
						"description": "To date, inclusive (YYYY-MM-DD)",
						"name": "hasta",
						"in": "query"
					},
					{
						"type": "integer",
						"description": "Department id",
						"name": "departamento",
						"in": "query"
					},
					{
						"type": "integer",
						"description": "Category id",
						"name": "categoria",
						"in": "query"
					},
					{
						"type": "integer",
						"description": "Junta vecinal id",
						"name": "junta",
						"in": "query"
					},
					{
						"type": "integer",
						"description": "Status id",
						"name": "situacion",
						"in": "query"
					},
					{
						"type": "string",
						"description": "Free text",
						"name": "q",
						"in": "query"
					}
				],
				"responses": {
					"200": {
						"description": "OK",
						"schema": {
							"type": "array",
							"items": {
								"$ref": "#/definitions/analytics.CategoryTotal"
							}
						}
					},
					"400": {
						"description": "Error envelope",
						"schema": {
							"type": "object",
							"additionalProperties": true
						}
					}
				}
			}
		},
		"/api/estadisticas/dashboard": {
			"get": {
				"security": [
					{
						"ApiKeyAuth": []
					}
				],
				"description": "Every chart series computed over one snapshot",
				"produces": [
					"application/json"
				],
				"tags": [
					"estadisticas"
				],
				"summary": "Dashboard",
				"parameters": [
					{
						"type": "string",
						"description": "From date (YYYY-MM-DD)",
						"name": "desde",
						"in": "query"
					},
					{
						"type": "string",
						"description": "To date, inclusive (YYYY-MM-DD)",
						"name": "hasta",
						"in": "query"
					},
					{
						"type": "integer",
						"description": "Department id",
						"name": "departamento",
						"in": "query"
					},
					{
						"type": "integer",
						"description": "Category id",
						"name": "categoria",
						"in": "query"
					},
					{
						"type": "integer",
						"description": "Junta vecinal id",
						"name": "junta",
						"in": "query"
					},
					{
						"type": "integer",
						"description": "Status id",
						"name": "situacion",
						"in": "query"
					},
					{
						"type": "string",
						"description": "Free text",
						"name": "q",
						"in": "query"
					}
				],
				"responses": {
					"200": {
						"description": "OK",
						"schema": {
							"$ref": "#/definitions/service.Dashboard"
						}
					},
					"400": {
						"description": "Error envelope",
						"schema": {
							"type": "object",
							"additionalProperties": true
						}
					}
				}
			}
		},
		"/api/estadisticas/departamentos": {
			"get": {
				"security": [
					{
						"ApiKeyAuth": []
					}
				],
				"produces": [
					"application/json"
				],
				"tags": [
					"estadisticas"
				],
				"summary": "Resolution rate per department and month",
				"parameters": [
					{
						"type": "string",
						"description": "From date (YYYY-MM-DD)",
						"name": "desde",
						"in": "query"
					},
					{
						"type": "string",
						"description": "To date, inclusive (YYYY-MM-DD)",
						"name": "hasta",
						"in": "query"
					},
					{
						"type": "integer",
						"description": "Department id",
						"name": "departamento",
						"in": "query"
					},
					{
						"type": "integer",
						"description": "Category id",
						"name": "categoria",
						"in": "query"
					},
					{
						"type": "integer",
						"description": "Junta vecinal id",
						"name": "junta",
						"in": "query"
					},
					{
						"type": "integer",
						"description": "Status id",
						"name": "situacion",
						"in": "query"
					},
					{
						"type": "string",
						"description": "Free text",
						"name": "q",
						"in": "query"
					}
				],
				"responses": {
					"200": {
						"description": "OK",
						"schema": {
							"type": "object",
							"additionalProperties": true
						}
					},
					"400": {
						"description": "Error envelope",
						"schema": {
							"type": "object",
							"additionalProperties": true
						}
					}
				}
			}
		},
		"/api/estadisticas/mensual-categorias": {
			"get": {
				"security": [
					{
						"ApiKeyAuth": []
					}
				],
				"description": "One row per month with the key mes and one count per category",
				"produces": [
					"application/json"
				],
				"tags": [
					"estadisticas"
				],
				"summary": "Complaints per month and category",
				"parameters": [
					{
						"type": "string",
						"description": "From date (YYYY-MM-DD)",
						"name": "desde",
						"in": "query"
					},
					{
						"type": "string",
						"description": "To date, inclusive (YYYY-MM-DD)",
						"name": "hasta",
						"in": "query"
					},
					{
						"type": "integer",
						"description": "Department id",
						"name": "departamento",
						"in": "query"
					},
					{
						"type": "integer",
						"description": "Category id",
						"name": "categoria",
						"in": "query"
					},
					{
						"type": "integer",
						"description": "Junta vecinal id",
						"name": "junta",
						"in": "query"
					},
					{
						"type": "integer",
						"description": "Status id",
						"name": "situacion",
						"in": "query"
					},
					{
						"type": "string",
						"description": "Free text",
						"name": "q",
						"in": "query"
					}
				],
				"responses": {
					"200": {
						"description": "OK",
						"schema": {
							"type": "array",
							"items": {
								"type": "object",
								"additionalProperties": true
							}
						}
					},
					"400": {
						"description": "Error envelope",
						"schema": {
							"type": "object",
							"additionalProperties": true
						}
					}
				}
			}
		},
		"/api/estadisticas/recibidos-resueltos": {
			"get": {
				"security": [
					{
						"ApiKeyAuth": []
					}
				],
				"produces": [
					"application/json"
				],
				"tags": [
					"estadisticas"
				],
				"summary": "Received versus resolved per month",
				"parameters": [
					{
						"type": "string",
						"description": "From date (YYYY-MM-DD)",
						"name": "desde",
						"in": "query"
					},
					{
						"type": "string",
						"description": "To date, inclusive (YYYY-MM-DD)",
						"name": "hasta",
						"in": "query"
					},
					{
						"type": "integer",
						"description": "Department id",
						"name": "departamento",
						"in": "query"
					},
					{
						"type": "integer",
						"description": "Category id",
						"name": "categoria",
						"in": "query"
					},
					{
						"type": "integer",
						"description": "Junta vecinal id",
						"name": "junta",
						"in": "query"
					},
					{
						"type": "integer",
						"description": "Status id",
						"name": "situacion",
						"in": "query"
					},
					{
						"type": "string",
						"description": "Free text",
						"name": "q",
						"in": "query"
					}
				],
				"responses": {
					"200": {
						"description": "OK",
						"schema": {
							"type": "array",
							"items": {
								"$ref": "#/definitions/analytics.MonthVolume"
							}
						}
					},
					"400": {
						"description": "Error envelope",
						"schema": {
							"type": "object",
							"additionalProperties": true
						}
					}
				}
			}
		},
		"/api/estadisticas/resumen": {
			"get": {
				"security": [
					{
						"ApiKeyAuth": []
					}
				],
				"description": "Total, resolved and pending complaints with the resolution rate",
				"produces": [
					"application/json"
				],
				"tags": [
					"estadisticas"
				],
				"summary": "Complaint summary",
				"parameters": [
					{
						"type": "string",
						"description": "From date (YYYY-MM-DD)",
						"name": "desde",
						"in": "query"
					},
					{
						"type": "string",
						"description": "To date, inclusive (YYYY-MM-DD)",
						"name": "hasta",
						"in": "query"
					},
					{
						"type": "integer",
						"description": "Department id",
						"name": "departamento",
						"in": "query"
					},
					{
						"type": "integer",
						"description": "Category id",
						"name": "categoria",
						"in": "query"
					},
					{
						"type": "integer",
						"description": "Junta vecinal id",
						"name": "junta",
						"in": "query"
					},
					{
						"type": "integer",
						"description": "Status id",
						"name": "situacion",
						"in": "query"
					},
					{
						"type": "string",
						"description": "Free text",
						"name": "q",
						"in": "query"
					}
				],
				"responses": {
					"200": {
						"description": "OK",
						"schema": {
							"$ref": "#/definitions/analytics.Summary"
						}
					},
					"400": {
						"description": "Error envelope",
						"schema": {
							"type": "object",
							"additionalProperties": true
						}
					}
				}
			}
		},
		"/api/juntas/cercana": {
			"get": {
				"security": [
					{
						"ApiKeyAuth": []
					}
				],
				"description": "Closest enabled junta to a coordinate or to a geocoded address",
				"produces": [
					"application/json"
				],
				"tags": [
					"juntas"
				],
				"summary": "Nearest junta vecinal",
				"parameters": [
					{
						"type": "number",
						"description": "Latitude",
						"name": "lat",
						"in": "query"
					},
					{
						"type": "number",
						"description": "Longitude",
						"name": "lon",
						"in": "query"
					},
					{
						"type": "string",
						"description": "Street address",
						"name": "direccion",
						"in": "query"
					}
				],
				"responses": {
					"200": {
						"description": "OK",
						"schema": {
							"$ref": "#/definitions/service.NearestLookup"
						}
					},
					"400": {
						"description": "Error envelope",
						"schema": {
							"type": "object",
							"additionalProperties": true
						}
					},
					"404": {
						"description": "Error envelope",
						"schema": {
							"type": "object",
							"additionalProperties": true
						}
					},
					"503": {
						"description": "Error envelope",
						"schema": {
							"type": "object",
							"additionalProperties": true
						}
					}
				}
			}
		},
		"/api/juntas/distancia": {
			"get": {
				"security": [
					{
						"ApiKeyAuth": []
					}
				],
				"description": "Great-circle distance in kilometres",
				"produces": [
					"application/json"
				],
				"tags": [
					"juntas"
				],
				"summary": "Distance between two points",
				"parameters": [
					{
						"type": "number",
						"description": "Latitude of the first point",
						"name": "lat1",
						"in": "query",
						"required": true
					},
					{
						"type": "number",
						"description": "Longitude of the first point",
						"name": "lon1",
						"in": "query",
						"required": true
					},
					{
						"type": "number",
						"description": "Latitude of the second point",
						"name": "lat2",
						"in": "query",
						"required": true
					},
					{
						"type": "number",
						"description": "Longitude of the second point",
						"name": "lon2",
						"in": "query",
						"required": true
					}
				],
				"responses": {
					"200": {
						"description": "OK",
						"schema": {
							"type": "object",
							"additionalProperties": {
								"type": "number"
							}
						}
					},
					"400": {
						"description": "Error envelope",
						"schema": {
							"type": "object",
							"additionalProperties": true
						}
					}
				}
			}
		},
		"/api/juntas/{id}/distancia": {
			"get": {
				"security": [
					{
						"ApiKeyAuth": []
					}
				],
				"produces": [
					"application/json"
				],
				"tags": [
					"juntas"
				],
				"summary": "Distance to a junta vecinal",
				"parameters": [
					{
						"type": "integer",
						"description": "Junta id",
						"name": "id",
						"in": "path",
						"required": true
					},
					{
						"type": "number",
						"description": "Latitude",
						"name": "lat",
						"in": "query",
						"required": true
					},
					{
						"type": "number",
						"description": "Longitude",
						"name": "lon",
						"in": "query",
						"required": true
					}
				],
				"responses": {
					"200": {
						"description": "OK",
						"schema": {
							"$ref": "#/definitions/service.JuntaDistance"
						}
					},
					"400": {
						"description": "Error envelope",
						"schema": {
							"type": "object",
							"additionalProperties": true
						}
					},
					"404": {
						"description": "Error envelope",
						"schema": {
							"type": "object",
							"additionalProperties": true
						}
					}
				}
			}
		},
		"/api/rankings/calor": {
			"get": {
				"security": [
					{
						"ApiKeyAuth": []
					}
				],
				"description": "Juntas ordered by resolution ratio",
				"produces": [
					"application/json"
				],
				"tags": [
					"rankings"
				],
				"summary": "Heat ranking",
				"parameters": [
					{
						"type": "string",
						"description": "From date (YYYY-MM-DD)",
						"name": "desde",
						"in": "query"
					},
					{
						"type": "string",
						"description": "To date, inclusive (YYYY-MM-DD)",
						"name": "hasta",
						"in": "query"
					},
					{
						"type": "integer",
						"description": "Department id",
						"name": "departamento",
						"in": "query"
					},
					{
						"type": "integer",
						"description": "Category id",
						"name": "categoria",
						"in": "query"
					},
					{
						"type": "integer",
						"description": "Junta vecinal id",
						"name": "junta",
						"in": "query"
					},
					{
						"type": "integer",
						"description": "Status id",
						"name": "situacion",
						"in": "query"
					},
					{
						"type": "string",
						"description": "Free text",
						"name": "q",
						"in": "query"
					}
				],
				"responses": {
					"200": {
						"description": "OK",
						"schema": {
							"$ref": "#/definitions/analytics.Report-analytics_HeatItem"
						}
					},
					"400": {
						"description": "Error envelope",
						"schema": {
							"type": "object",
							"additionalProperties": true
						}
					}
				}
			}
		},
		"/api/rankings/criticidad": {
			"get": {
				"security": [
					{
						"ApiKeyAuth": []
					}
				],
				"description": "Juntas ordered by indice_criticidad",
				"produces": [
					"application/json"
				],
				"tags": [
					"rankings"
				],
				"summary": "Criticality ranking",
				"parameters": [
					{
						"type": "string",
						"description": "From date (YYYY-MM-DD)",
						"name": "desde",
						"in": "query"
					},
					{
						"type": "string",
						"description": "To date, inclusive (YYYY-MM-DD)",
						"name": "hasta",
						"in": "query"
					},
					{
						"type": "integer",
						"description": "Department id",
						"name": "departamento",
						"in": "query"
					},
					{
						"type": "integer",
						"description": "Category id",
						"name": "categoria",
						"in": "query"
					},
					{
						"type": "integer",
						"description": "Junta vecinal id",
						"name": "junta",
						"in": "query"
					},
					{
						"type": "integer",
						"description": "Status id",
						"name": "situacion",
						"in": "query"
					},
					{
						"type": "string",
						"description": "Free text",
						"name": "q",
						"in": "query"
					}
				],
				"responses": {
					"200": {
						"description": "OK",
						"schema": {
							"$ref": "#/definitions/analytics.Report-analytics_CriticalityItem"
						}
					},
					"400": {
						"description": "Error envelope",
						"schema": {
							"type": "object",
							"additionalProperties": true
						}
					}
				}
			}
		},
		"/api/rankings/eficiencia": {
			"get": {
				"security": [
					{
						"ApiKeyAuth": []
					}
				],
				"description": "Juntas ordered by indice_eficiencia",
				"produces": [
					"application/json"
				],
				"tags": [
					"rankings"
				],
				"summary": "Efficiency ranking",
				"parameters": [
					{
						"type": "string",
						"description": "From date (YYYY-MM-DD)",
						"name": "desde",
						"in": "query"
					},
					{
						"type": "string",
						"description": "To date, inclusive (YYYY-MM-DD)",
						"name": "hasta",
						"in": "query"
					},
					{
						"type": "integer",
						"description": "Department id",
						"name": "departamento",
						"in": "query"
					},
					{
						"type": "integer",
						"description": "Category id",
						"name": "categoria",
						"in": "query"
					},
					{
						"type": "integer",
						"description": "Junta vecinal id",
						"name": "junta",
						"in": "query"
					},
					{
						"type": "integer",
						"description": "Status id",
						"name": "situacion",
						"in": "query"
					},
					{
						"type": "string",
						"description": "Free text",
						"name": "q",
						"in": "query"
					}
				],
				"responses": {
					"200": {
						"description": "OK",
						"schema": {
							"$ref": "#/definitions/analytics.Report-analytics_EfficiencyItem"
						}
					},
					"400": {
						"description": "Error envelope",
						"schema": {
							"type": "object",
							"additionalProperties": true
						}
					}
				}
			}
		},
		"/healthz": {
			"get": {
				"description": "Pings the database",
				"produces": [
					"application/json"
				],
				"tags": [
					"health"
				],
				"summary": "Health check",
				"parameters": [],
				"responses": {
					"200": {
						"description": "OK",
						"schema": {
							"type": "object",
							"additionalProperties": {
								"type": "string"
							}
						}
					},
					"503": {
						"description": "Error envelope",
						"schema": {
							"type": "object",
							"additionalProperties": true
						}
					}
				}
			}
		}
	},
	"definitions": {
		"analytics.CategoryTotal": {
			"type": "object",
			"properties": {
				"categoria": {
					"type": "string"
				},
				"total": {
					"type": "integer"
				}
			}
		},
		"analytics.CriticalityItem": {
			"type": "object",
			"properties": {
				"categorias": {
					"type": "object",
					"additionalProperties": true
				},
				"junta_vecinal": {
					"$ref": "#/definitions/models.JuntaVecinal"
				},
				"metricas": {
					"$ref": "#/definitions/analytics.CriticalityMetrics"
				}
			}
		},
		"analytics.CriticalityMetrics": {
			"type": "object",
			"properties": {
				"factor_volumen": {
					"type": "number"
				},
				"indice_criticidad": {
					"type": "number"
				},
				"pendientes": {
					"type": "integer"
				},
				"porcentaje_urgentes": {
					"type": "number"
				},
				"resueltos": {
					"type": "integer"
				},
				"total": {
					"type": "integer"
				},
				"urgentes": {
					"type": "integer"
				}
			}
		},
		"analytics.EfficiencyItem": {
			"type": "object",
			"properties": {
				"junta_vecinal": {
					"$ref": "#/definitions/models.JuntaVecinal"
				},
				"metricas": {
					"$ref": "#/definitions/analytics.EfficiencyMetrics"
				}
			}
		},
		"analytics.EfficiencyMetrics": {
			"type": "object",
			"properties": {
				"calificacion_promedio": {
					"type": "number"
				},
				"factor_volumen": {
					"type": "number"
				},
				"indice_eficiencia": {
					"type": "number"
				},
				"pendientes": {
					"type": "integer"
				},
				"porcentaje_a_tiempo": {
					"type": "number"
				},
				"resueltos": {
					"type": "integer"
				},
				"resueltos_a_tiempo": {
					"type": "integer"
				},
				"tasa_resolucion": {
					"type": "number"
				},
				"tiempo_promedio_dias": {
					"type": "integer"
				},
				"total": {
					"type": "integer"
				}
			}
		},
		"analytics.HeatItem": {
			"type": "object",
			"properties": {
				"categorias": {
					"type": "object",
					"additionalProperties": true
				},
				"junta_vecinal": {
					"$ref": "#/definitions/models.JuntaVecinal"
				},
				"metricas": {
					"$ref": "#/definitions/analytics.HeatMetrics"
				}
			}
		},
		"analytics.HeatMetrics": {
			"type": "object",
			"properties": {
				"calificacion_promedio": {
					"type": "number"
				},
				"eficiencia": {
					"type": "number"
				},
				"intensidad": {
					"type": "number"
				},
				"pendientes": {
					"type": "integer"
				},
				"resueltos": {
					"type": "integer"
				},
				"tiempo_promedio_dias": {
					"type": "integer"
				},
				"total": {
					"type": "integer"
				},
				"ultima_resolucion": {
					"type": "string"
				}
			}
		},
		"analytics.MonthVolume": {
			"type": "object",
			"properties": {
				"en_curso": {
					"type": "integer"
				},
				"mes": {
					"type": "string"
				},
				"recibidos": {
					"type": "integer"
				},
				"resueltos": {
					"type": "integer"
				}
			}
		},
		"analytics.NearestMatch": {
			"type": "object",
			"properties": {
				"distancia_km": {
					"type": "number"
				},
				"junta_vecinal": {
					"$ref": "#/definitions/models.JuntaVecinal"
				}
			}
		},
		"analytics.Report-analytics_CriticalityItem": {
			"type": "object",
			"properties": {
				"items": {
					"type": "array",
					"items": {
						"$ref": "#/definitions/analytics.CriticalityItem"
					}
				},
				"mejor": {
					"$ref": "#/definitions/analytics.CriticalityItem"
				},
				"orden": {
					"type": "string"
				},
				"top": {
					"type": "array",
					"items": {
						"$ref": "#/definitions/analytics.CriticalityItem"
					}
				}
			}
		},
		"analytics.Report-analytics_EfficiencyItem": {
			"type": "object",
			"properties": {
				"items": {
					"type": "array",
					"items": {
						"$ref": "#/definitions/analytics.EfficiencyItem"
					}
				},
				"mejor": {
					"$ref": "#/definitions/analytics.EfficiencyItem"
				},
				"orden": {
					"type": "string"
				},
				"top": {
					"type": "array",
					"items": {
						"$ref": "#/definitions/analytics.EfficiencyItem"
					}
				}
			}
		},
		"analytics.Report-analytics_HeatItem": {
			"type": "object",
			"properties": {
				"items": {
					"type": "array",
					"items": {
						"$ref": "#/definitions/analytics.HeatItem"
					}
				},
				"mejor": {
					"$ref": "#/definitions/analytics.HeatItem"
				},
				"orden": {
					"type": "string"
				},
				"top": {
					"type": "array",
					"items": {
						"$ref": "#/definitions/analytics.HeatItem"
					}
				}
			}
		},
		"analytics.Summary": {
			"type": "object",
			"properties": {
				"pendientes": {
					"type": "integer"
				},
				"porcentaje_resolucion": {
					"type": "number"
				},
				"resueltos": {
					"type": "integer"
				},
				"total": {
					"type": "integer"
				}
			}
		},
		"geocode.Result": {
			"type": "object",
			"properties": {
				"confianza": {
					"type": "number"
				},
				"direccion_normalizada": {
					"type": "string"
				},
				"latitud": {
					"type": "number"
				},
				"longitud": {
					"type": "number"
				}
			}
		},
		"models.JuntaVecinal": {
			"type": "object",
			"properties": {
				"estado": {
					"type": "string"
				},
				"id": {
					"type": "integer"
				},
				"latitud": {
					"type": "number"
				},
				"longitud": {
					"type": "number"
				},
				"nombre": {
					"type": "string"
				}
			}
		},
		"service.Dashboard": {
			"type": "object",
			"properties": {
				"mensual_por_categoria": {
					"type": "array",
					"items": {
						"type": "object",
						"additionalProperties": true
					}
				},
				"por_categoria": {
					"type": "array",
					"items": {
						"$ref": "#/definitions/analytics.CategoryTotal"
					}
				},
				"recibidos_vs_resueltos": {
					"type": "array",
					"items": {
						"$ref": "#/definitions/analytics.MonthVolume"
					}
				},
				"resumen": {
					"$ref": "#/definitions/analytics.Summary"
				},
				"tasa_por_departamento": {
					"type": "object",
					"additionalProperties": true
				}
			}
		},
		"service.JuntaDistance": {
			"type": "object",
			"properties": {
				"distancia_km": {
					"type": "number"
				},
				"junta": {
					"$ref": "#/definitions/models.JuntaVecinal"
				}
			}
		},
		"service.NearestLookup": {
			"type": "object",
			"properties": {
				"consulta": {
					"type": "string"
				},
				"geocodificacion": {
					"$ref": "#/definitions/geocode.Result"
				},
				"resultado": {
					"$ref": "#/definitions/analytics.NearestMatch"
				}
			}
		}
	},
	"securityDefinitions": {
		"ApiKeyAuth": {
			"type": "apiKey",
			"name": "X-Api-Key",
			"in": "header"
		}
	}
}`

// SwaggerInfo holds exported Swagger Info so clients can modify it
var SwaggerInfo = &swag.Spec{
	Version:		  "1.0",
	Host:			 "",
	BasePath:		 "/",
	Schemes:		  []string{},
	Title:			"Juntas Vecinales Analytics",
	Description:	  "Statistics, rankings and geolocation over municipal complaints",
	InfoInstanceName: "swagger",
	SwaggerTemplate:  docTemplate,
	LeftDelim:		"{{",
	RightDelim:	   "}}",
}

func init() {
	swag.Register(SwaggerInfo.InstanceName(), SwaggerInfo)
}
