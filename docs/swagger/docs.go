// Package swagger - OpenAPI 2.0 описание HTTP API, которое отдает /swagger/*.
// Формат совпадает с выводом swag init -g cmd/api/main.go -o docs/swagger;
// соответствие аннотациям @Router проверяет docs_test.go.
package swagger

import "github.com/swaggo/swag"

const docTemplate = `{
    "schemes": {{ marshal .Schemes }},
    "swagger": "2.0",
    "info": {
        "description": "{{escape .Description}}",
        "title": "{{.Title}}",
        "contact": {
            "name": "API Support"
        },
        "license": {
            "name": "MIT",
            "url": "https://opensource.org/licenses/MIT"
        },
        "version": "{{.Version}}"
    },
    "host": "{{.Host}}",
    "basePath": "{{.BasePath}}",
    "paths": {
        "/api/v1/estimate": {
            "post": {
                "description": "Дистанция (км) и длительность (\"X sa Y dk\") по упорядоченным точкам",
                "consumes": [
                    "application/json"
                ],
                "produces": [
                    "application/json"
                ],
                "tags": [
                    "Estimate"
                ],
                "summary": "Оценка маршрута",
                "parameters": [
                    {
                        "description": "Точки маршрута",
                        "name": "request",
                        "in": "body",
                        "required": true,
                        "schema": {
                            "$ref": "#/definitions/dto.EstimateRequest"
                        }
                    }
                ],
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "allOf": [
                                {
                                    "$ref": "#/definitions/utils.SuccessResponse"
                                },
                                {
                                    "type": "object",
                                    "properties": {
                                        "data": {
                                            "$ref": "#/definitions/dto.EstimateResponse"
                                        }
                                    }
                                }
                            ]
                        }
                    },
                    "400": {
                        "description": "Bad Request",
                        "schema": {
                            "$ref": "#/definitions/utils.ErrorResponse"
                        }
                    },
                    "503": {
                        "description": "Service Unavailable",
                        "schema": {
                            "$ref": "#/definitions/utils.ErrorResponse"
                        }
                    }
                }
            }
        },
        "/api/v1/geocode/reverse": {
            "get": {
                "description": "Адрес для координат. Если адрес не найден, возвращаются координаты \"lat, lng\".",
                "produces": [
                    "application/json"
                ],
                "tags": [
                    "Geocoding"
                ],
                "summary": "Обратное геокодирование",
                "parameters": [
                    {
                        "type": "number",
                        "description": "Широта",
                        "name": "lat",
                        "in": "query",
                        "required": true
                    },
                    {
                        "type": "number",
                        "description": "Долгота",
                        "name": "lng",
                        "in": "query",
                        "required": true
                    }
                ],
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "allOf": [
                                {
                                    "$ref": "#/definitions/utils.SuccessResponse"
                                },
                                {
                                    "type": "object",
                                    "properties": {
                                        "data": {
                                            "$ref": "#/definitions/dto.ReverseGeocodeResponse"
                                        }
                                    }
                                }
                            ]
                        }
                    },
                    "400": {
                        "description": "Bad Request",
                        "schema": {
                            "$ref": "#/definitions/utils.ErrorResponse"
                        }
                    }
                }
            }
        },
        "/api/v1/geocode/search": {
            "get": {
                "description": "Первый результат геокодера в пределах страны сервиса",
                "produces": [
                    "application/json"
                ],
                "tags": [
                    "Geocoding"
                ],
                "summary": "Поиск адреса",
                "parameters": [
                    {
                        "type": "string",
                        "description": "Адрес (минимум 2 символа)",
                        "name": "q",
                        "in": "query",
                        "required": true
                    }
                ],
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "allOf": [
                                {
                                    "$ref": "#/definitions/utils.SuccessResponse"
                                },
                                {
                                    "type": "object",
                                    "properties": {
                                        "data": {
                                            "$ref": "#/definitions/domain.GeoPoint"
                                        }
                                    }
                                }
                            ]
                        }
                    },
                    "400": {
                        "description": "Bad Request",
                        "schema": {
                            "$ref": "#/definitions/utils.ErrorResponse"
                        }
                    },
                    "404": {
                        "description": "Not Found",
                        "schema": {
                            "$ref": "#/definitions/utils.ErrorResponse"
                        }
                    },
                    "503": {
                        "description": "Service Unavailable",
                        "schema": {
                            "$ref": "#/definitions/utils.ErrorResponse"
                        }
                    }
                }
            }
        },
        "/api/v1/planner": {
            "post": {
                "produces": [
                    "application/json"
                ],
                "tags": [
                    "Planner"
                ],
                "summary": "Новый черновик",
                "responses": {
                    "201": {
                        "description": "Created",
                        "schema": {
                            "$ref": "#/definitions/handler.DraftResponse"
                        }
                    }
                }
            }
        },
        "/api/v1/planner/{id}": {
            "get": {
                "produces": [
                    "application/json"
                ],
                "tags": [
                    "Planner"
                ],
                "summary": "Состояние черновика",
                "parameters": [
                    {
                        "type": "string",
                        "description": "ID черновика",
                        "name": "id",
                        "in": "path",
                        "required": true
                    }
                ],
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "$ref": "#/definitions/handler.DraftResponse"
                        }
                    },
                    "404": {
                        "description": "Not Found",
                        "schema": {
                            "$ref": "#/definitions/utils.ErrorResponse"
                        }
                    }
                }
            },
            "delete": {
                "produces": [
                    "application/json"
                ],
                "tags": [
                    "Planner"
                ],
                "summary": "Удалить черновик",
                "parameters": [
                    {
                        "type": "string",
                        "description": "ID черновика",
                        "name": "id",
                        "in": "path",
                        "required": true
                    }
                ],
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "$ref": "#/definitions/utils.SuccessResponse"
                        }
                    }
                }
            }
        },
        "/api/v1/planner/{id}/address": {
            "post": {
                "description": "Геокодирует адрес и назначает его start или end",
                "consumes": [
                    "application/json"
                ],
                "produces": [
                    "application/json"
                ],
                "tags": [
                    "Planner"
                ],
                "summary": "Ввод адреса",
                "parameters": [
                    {
                        "type": "string",
                        "description": "ID черновика",
                        "name": "id",
                        "in": "path",
                        "required": true
                    },
                    {
                        "description": "Роль и адрес",
                        "name": "request",
                        "in": "body",
                        "required": true,
                        "schema": {
                            "$ref": "#/definitions/dto.AddressInputRequest"
                        }
                    }
                ],
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "$ref": "#/definitions/handler.DraftResponse"
                        }
                    },
                    "400": {
                        "description": "Bad Request",
                        "schema": {
                            "$ref": "#/definitions/utils.ErrorResponse"
                        }
                    },
                    "404": {
                        "description": "Not Found",
                        "schema": {
                            "$ref": "#/definitions/utils.ErrorResponse"
                        }
                    }
                }
            }
        },
        "/api/v1/planner/{id}/click": {
            "post": {
                "description": "Назначает start или end, подписывает адресом и пересчитывает метрики",
                "consumes": [
                    "application/json"
                ],
                "produces": [
                    "application/json"
                ],
                "tags": [
                    "Planner"
                ],
                "summary": "Клик по карте",
                "parameters": [
                    {
                        "type": "string",
                        "description": "ID черновика",
                        "name": "id",
                        "in": "path",
                        "required": true
                    },
                    {
                        "description": "Координаты",
                        "name": "request",
                        "in": "body",
                        "required": true,
                        "schema": {
                            "$ref": "#/definitions/dto.MapClickRequest"
                        }
                    }
                ],
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "$ref": "#/definitions/handler.DraftResponse"
                        }
                    },
                    "400": {
                        "description": "Bad Request",
                        "schema": {
                            "$ref": "#/definitions/utils.ErrorResponse"
                        }
                    },
                    "404": {
                        "description": "Not Found",
                        "schema": {
                            "$ref": "#/definitions/utils.ErrorResponse"
                        }
                    }
                }
            }
        },
        "/api/v1/planner/{id}/details": {
            "put": {
                "consumes": [
                    "application/json"
                ],
                "produces": [
                    "application/json"
                ],
                "tags": [
                    "Planner"
                ],
                "summary": "Описание черновика",
                "parameters": [
                    {
                        "type": "string",
                        "description": "ID черновика",
                        "name": "id",
                        "in": "path",
                        "required": true
                    },
                    {
                        "description": "Название, город, описание, сложность",
                        "name": "request",
                        "in": "body",
                        "required": true,
                        "schema": {
                            "$ref": "#/definitions/dto.DraftDetailsRequest"
                        }
                    }
                ],
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "$ref": "#/definitions/handler.DraftResponse"
                        }
                    },
                    "400": {
                        "description": "Bad Request",
                        "schema": {
                            "$ref": "#/definitions/utils.ErrorResponse"
                        }
                    },
                    "404": {
                        "description": "Not Found",
                        "schema": {
                            "$ref": "#/definitions/utils.ErrorResponse"
                        }
                    }
                }
            }
        },
        "/api/v1/planner/{id}/load/{routeId}": {
            "post": {
                "produces": [
                    "application/json"
                ],
                "tags": [
                    "Planner"
                ],
                "summary": "Загрузить маршрут в черновик",
                "parameters": [
                    {
                        "type": "string",
                        "description": "ID черновика",
                        "name": "id",
                        "in": "path",
                        "required": true
                    },
                    {
                        "type": "string",
                        "description": "ID маршрута",
                        "name": "routeId",
                        "in": "path",
                        "required": true
                    }
                ],
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "$ref": "#/definitions/handler.DraftResponse"
                        }
                    },
                    "404": {
                        "description": "Not Found",
                        "schema": {
                            "$ref": "#/definitions/utils.ErrorResponse"
                        }
                    }
                }
            }
        },
        "/api/v1/planner/{id}/mode": {
            "put": {
                "description": "none - автоматический выбор: start, затем end, затем снова end",
                "consumes": [
                    "application/json"
                ],
                "produces": [
                    "application/json"
                ],
                "tags": [
                    "Planner"
                ],
                "summary": "Режим выбора точки",
                "parameters": [
                    {
                        "type": "string",
                        "description": "ID черновика",
                        "name": "id",
                        "in": "path",
                        "required": true
                    },
                    {
                        "description": "Режим",
                        "name": "request",
                        "in": "body",
                        "required": true,
                        "schema": {
                            "$ref": "#/definitions/dto.SelectionModeRequest"
                        }
                    }
                ],
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "$ref": "#/definitions/handler.DraftResponse"
                        }
                    },
                    "400": {
                        "description": "Bad Request",
                        "schema": {
                            "$ref": "#/definitions/utils.ErrorResponse"
                        }
                    },
                    "404": {
                        "description": "Not Found",
                        "schema": {
                            "$ref": "#/definitions/utils.ErrorResponse"
                        }
                    }
                }
            }
        },
        "/api/v1/planner/{id}/submit": {
            "post": {
                "description": "После успешного сохранения черновик удаляется",
                "produces": [
                    "application/json"
                ],
                "tags": [
                    "Planner"
                ],
                "summary": "Сохранить черновик",
                "parameters": [
                    {
                        "type": "string",
                        "description": "ID черновика",
                        "name": "id",
                        "in": "path",
                        "required": true
                    }
                ],
                "responses": {
                    "201": {
                        "description": "Created",
                        "schema": {
                            "$ref": "#/definitions/dto.RouteResponse"
                        }
                    },
                    "400": {
                        "description": "Bad Request",
                        "schema": {
                            "$ref": "#/definitions/utils.ErrorResponse"
                        }
                    },
                    "401": {
                        "description": "Unauthorized",
                        "schema": {
                            "$ref": "#/definitions/utils.ErrorResponse"
                        }
                    },
                    "404": {
                        "description": "Not Found",
                        "schema": {
                            "$ref": "#/definitions/utils.ErrorResponse"
                        }
                    }
                }
            }
        },
        "/api/v1/planner/{id}/waypoints": {
            "put": {
                "description": "Заменяет точки между start и end",
                "consumes": [
                    "application/json"
                ],
                "produces": [
                    "application/json"
                ],
                "tags": [
                    "Planner"
                ],
                "summary": "Промежуточные точки",
                "parameters": [
                    {
                        "type": "string",
                        "description": "ID черновика",
                        "name": "id",
                        "in": "path",
                        "required": true
                    },
                    {
                        "description": "Точки",
                        "name": "request",
                        "in": "body",
                        "required": true,
                        "schema": {
                            "$ref": "#/definitions/dto.DraftWaypointsRequest"
                        }
                    }
                ],
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "$ref": "#/definitions/handler.DraftResponse"
                        }
                    },
                    "400": {
                        "description": "Bad Request",
                        "schema": {
                            "$ref": "#/definitions/utils.ErrorResponse"
                        }
                    },
                    "404": {
                        "description": "Not Found",
                        "schema": {
                            "$ref": "#/definitions/utils.ErrorResponse"
                        }
                    }
                }
            }
        },
        "/api/v1/routes": {
            "get": {
                "description": "Публичный список маршрутов, новые первыми. Фильтры комбинируются.",
                "produces": [
                    "application/json"
                ],
                "tags": [
                    "Routes"
                ],
                "summary": "Список маршрутов",
                "parameters": [
                    {
                        "type": "string",
                        "description": "Подстрока города, без учета регистра",
                        "name": "city",
                        "in": "query"
                    },
                    {
                        "type": "number",
                        "description": "Минимальная дистанция, км (включительно)",
                        "name": "minDistance",
                        "in": "query"
                    },
                    {
                        "type": "string",
                        "description": "Подстрока длительности",
                        "name": "durationContains",
                        "in": "query"
                    }
                ],
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "type": "array",
                            "items": {
                                "$ref": "#/definitions/domain.Route"
                            }
                        }
                    },
                    "400": {
                        "description": "Bad Request",
                        "schema": {
                            "$ref": "#/definitions/utils.ErrorResponse"
                        }
                    },
                    "500": {
                        "description": "Internal Server Error",
                        "schema": {
                            "$ref": "#/definitions/utils.ErrorResponse"
                        }
                    }
                }
            },
            "post": {
                "description": "waypoints, startLocation и endLocation принимаются объектами или JSON-строками, distance - числом или строкой",
                "consumes": [
                    "application/json"
                ],
                "produces": [
                    "application/json"
                ],
                "tags": [
                    "Routes"
                ],
                "summary": "Сохранить маршрут",
                "parameters": [
                    {
                        "description": "Маршрут",
                        "name": "request",
                        "in": "body",
                        "required": true,
                        "schema": {
                            "$ref": "#/definitions/dto.CreateRouteRequest"
                        }
                    }
                ],
                "responses": {
                    "201": {
                        "description": "Created",
                        "schema": {
                            "$ref": "#/definitions/dto.RouteResponse"
                        }
                    },
                    "400": {
                        "description": "Bad Request",
                        "schema": {
                            "$ref": "#/definitions/utils.ErrorResponse"
                        }
                    },
                    "401": {
                        "description": "Unauthorized",
                        "schema": {
                            "$ref": "#/definitions/utils.ErrorResponse"
                        }
                    }
                }
            }
        },
        "/api/v1/routes/mine": {
            "get": {
                "description": "Маршруты текущего пользователя или администратора",
                "produces": [
                    "application/json"
                ],
                "tags": [
                    "Routes"
                ],
                "summary": "Мои маршруты",
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "type": "array",
                            "items": {
                                "$ref": "#/definitions/domain.Route"
                            }
                        }
                    },
                    "401": {
                        "description": "Unauthorized",
                        "schema": {
                            "$ref": "#/definitions/utils.ErrorResponse"
                        }
                    }
                }
            }
        },
        "/api/v1/routes/stats": {
            "get": {
                "description": "Количество, средняя дистанция, самый длинный маршрут, разбивка по городам",
                "produces": [
                    "application/json"
                ],
                "tags": [
                    "Routes"
                ],
                "summary": "Статистика маршрутов",
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "$ref": "#/definitions/dto.StatsResponse"
                        }
                    },
                    "500": {
                        "description": "Internal Server Error",
                        "schema": {
                            "$ref": "#/definitions/utils.ErrorResponse"
                        }
                    }
                }
            }
        },
        "/api/v1/routes/{id}": {
            "get": {
                "produces": [
                    "application/json"
                ],
                "tags": [
                    "Routes"
                ],
                "summary": "Маршрут по id",
                "parameters": [
                    {
                        "type": "string",
                        "description": "ID маршрута",
                        "name": "id",
                        "in": "path",
                        "required": true
                    }
                ],
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "$ref": "#/definitions/dto.RouteResponse"
                        }
                    },
                    "404": {
                        "description": "Not Found",
                        "schema": {
                            "$ref": "#/definitions/utils.ErrorResponse"
                        }
                    }
                }
            },
            "post": {
                "description": "Полная перезапись. Владелец и дата создания сохраняются.",
                "consumes": [
                    "application/json"
                ],
                "produces": [
                    "application/json"
                ],
                "tags": [
                    "Routes"
                ],
                "summary": "Изменить маршрут",
                "parameters": [
                    {
                        "type": "string",
                        "description": "ID маршрута",
                        "name": "id",
                        "in": "path",
                        "required": true
                    },
                    {
                        "description": "Маршрут",
                        "name": "request",
                        "in": "body",
                        "required": true,
                        "schema": {
                            "$ref": "#/definitions/dto.UpdateRouteRequest"
                        }
                    }
                ],
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "$ref": "#/definitions/utils.SuccessResponse"
                        }
                    },
                    "400": {
                        "description": "Bad Request",
                        "schema": {
                            "$ref": "#/definitions/utils.ErrorResponse"
                        }
                    },
                    "401": {
                        "description": "Unauthorized",
                        "schema": {
                            "$ref": "#/definitions/utils.ErrorResponse"
                        }
                    },
                    "403": {
                        "description": "Forbidden",
                        "schema": {
                            "$ref": "#/definitions/utils.ErrorResponse"
                        }
                    },
                    "404": {
                        "description": "Not Found",
                        "schema": {
                            "$ref": "#/definitions/utils.ErrorResponse"
                        }
                    }
                }
            }
        },
        "/api/v1/routes/{id}/delete": {
            "post": {
                "description": "Удаление отсутствующего маршрута считается успешным",
                "produces": [
                    "application/json"
                ],
                "tags": [
                    "Routes"
                ],
                "summary": "Удалить маршрут",
                "parameters": [
                    {
                        "type": "string",
                        "description": "ID маршрута",
                        "name": "id",
                        "in": "path",
                        "required": true
                    }
                ],
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "$ref": "#/definitions/utils.SuccessResponse"
                        }
                    },
                    "401": {
                        "description": "Unauthorized",
                        "schema": {
                            "$ref": "#/definitions/utils.ErrorResponse"
                        }
                    },
                    "403": {
                        "description": "Forbidden",
                        "schema": {
                            "$ref": "#/definitions/utils.ErrorResponse"
                        }
                    }
                }
            }
        },
        "/api/v1/routes/{id}/geojson": {
            "get": {
                "description": "FeatureCollection: маркеры start/end и линия маршрута",
                "produces": [
                    "application/json"
                ],
                "tags": [
                    "Routes"
                ],
                "summary": "Маршрут в GeoJSON",
                "parameters": [
                    {
                        "type": "string",
                        "description": "ID маршрута",
                        "name": "id",
                        "in": "path",
                        "required": true
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
                    "404": {
                        "description": "Not Found",
                        "schema": {
                            "$ref": "#/definitions/utils.ErrorResponse"
                        }
                    }
                }
            }
        },
        "/health": {
            "get": {
                "produces": [
                    "application/json"
                ],
                "tags": [
                    "System"
                ],
                "summary": "Health check",
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "type": "object",
                            "additionalProperties": true
                        }
                    },
                    "503": {
                        "description": "Service Unavailable",
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
        "domain.Difficulty": {
            "type": "string",
            "enum": [
                "easy",
                "medium",
                "hard"
            ],
            "x-enum-varnames": [
                "DifficultyEasy",
                "DifficultyMedium",
                "DifficultyHard"
            ]
        },
        "domain.GeoPoint": {
            "type": "object",
            "properties": {
                "address": {
                    "type": "string"
                },
                "lat": {
                    "type": "number",
                    "maximum": 90,
                    "minimum": -90
                },
                "lng": {
                    "type": "number",
                    "maximum": 180,
                    "minimum": -180
                },
                "name": {
                    "type": "string"
                }
            }
        },
        "domain.OwnerRef": {
            "type": "object",
            "properties": {
                "adminId": {
                    "type": "string"
                },
                "userId": {
                    "type": "string"
                }
            }
        },
        "domain.Route": {
            "type": "object",
            "properties": {
                "city": {
                    "type": "string"
                },
                "createdAt": {
                    "type": "string"
                },
                "description": {
                    "type": "string"
                },
                "difficulty": {
                    "$ref": "#/definitions/domain.Difficulty"
                },
                "distance": {
                    "type": "number"
                },
                "duration": {
                    "type": "string"
                },
                "endLocation": {
                    "$ref": "#/definitions/domain.GeoPoint"
                },
                "id": {
                    "type": "string"
                },
                "owner": {
                    "$ref": "#/definitions/domain.OwnerRef"
                },
                "startLocation": {
                    "$ref": "#/definitions/domain.GeoPoint"
                },
                "status": {
                    "$ref": "#/definitions/domain.RouteStatus"
                },
                "title": {
                    "type": "string"
                },
                "updatedAt": {
                    "type": "string"
                },
                "waypoints": {
                    "type": "array",
                    "items": {
                        "$ref": "#/definitions/domain.GeoPoint"
                    }
                }
            }
        },
        "domain.RouteDraft": {
            "type": "object",
            "properties": {
                "city": {
                    "type": "string"
                },
                "description": {
                    "type": "string"
                },
                "difficulty": {
                    "$ref": "#/definitions/domain.Difficulty"
                },
                "distanceKm": {
                    "type": "number"
                },
                "durationLabel": {
                    "type": "string"
                },
                "end": {
                    "$ref": "#/definitions/domain.GeoPoint"
                },
                "start": {
                    "$ref": "#/definitions/domain.GeoPoint"
                },
                "title": {
                    "type": "string"
                },
                "waypoints": {
                    "type": "array",
                    "items": {
                        "$ref": "#/definitions/domain.GeoPoint"
                    }
                }
            }
        },
        "domain.RouteStats": {
            "type": "object",
            "properties": {
                "averageDistanceKm": {
                    "type": "number"
                },
                "byCity": {
                    "type": "object",
                    "additionalProperties": {
                        "type": "integer"
                    }
                },
                "longestRoute": {
                    "$ref": "#/definitions/domain.RouteSummary"
                },
                "totalRoutes": {
                    "type": "integer"
                },
                "updatedAt": {
                    "type": "string"
                }
            }
        },
        "domain.RouteStatus": {
            "type": "string",
            "enum": [
                "active",
                "draft"
            ],
            "x-enum-varnames": [
                "RouteStatusActive",
                "RouteStatusDraft"
            ]
        },
        "domain.RouteSummary": {
            "type": "object",
            "properties": {
                "distanceKm": {
                    "type": "number"
                },
                "id": {
                    "type": "string"
                },
                "title": {
                    "type": "string"
                }
            }
        },
        "dto.AddressInputRequest": {
            "type": "object",
            "required": [
                "query",
                "role"
            ],
            "properties": {
                "query": {
                    "type": "string",
                    "maxLength": 256,
                    "minLength": 2
                },
                "role": {
                    "type": "string",
                    "enum": [
                        "start",
                        "end"
                    ]
                }
            }
        },
        "dto.CreateRouteRequest": {
            "type": "object",
            "properties": {
                "city": {
                    "type": "string"
                },
                "description": {
                    "type": "string"
                },
                "difficulty": {
                    "type": "string"
                },
                "distance": {
                    "type": "number"
                },
                "duration": {
                    "type": "string"
                },
                "endLocation": {
                    "type": "object"
                },
                "startLocation": {
                    "type": "object"
                },
                "title": {
                    "type": "string"
                },
                "waypoints": {
                    "type": "array",
                    "items": {
                        "type": "object"
                    }
                }
            }
        },
        "dto.DraftDetailsRequest": {
            "type": "object",
            "properties": {
                "city": {
                    "type": "string",
                    "maxLength": 100
                },
                "description": {
                    "type": "string",
                    "maxLength": 5000
                },
                "difficulty": {
                    "type": "string"
                },
                "title": {
                    "type": "string",
                    "maxLength": 200
                }
            }
        },
        "dto.DraftWaypointsRequest": {
            "type": "object",
            "properties": {
                "waypoints": {
                    "type": "array",
                    "maxItems": 23,
                    "items": {
                        "$ref": "#/definitions/domain.GeoPoint"
                    }
                }
            }
        },
        "dto.EstimateRequest": {
            "type": "object",
            "required": [
                "points"
            ],
            "properties": {
                "points": {
                    "type": "array",
                    "minItems": 2,
                    "items": {
                        "$ref": "#/definitions/domain.GeoPoint"
                    }
                }
            }
        },
        "dto.EstimateResponse": {
            "type": "object",
            "properties": {
                "distanceKm": {
                    "type": "number"
                },
                "durationLabel": {
                    "type": "string"
                },
                "strategy": {
                    "type": "string"
                }
            }
        },
        "dto.MapClickRequest": {
            "type": "object",
            "required": [
                "lat",
                "lng"
            ],
            "properties": {
                "lat": {
                    "type": "number",
                    "maximum": 90,
                    "minimum": -90
                },
                "lng": {
                    "type": "number",
                    "maximum": 180,
                    "minimum": -180
                }
            }
        },
        "dto.ReverseGeocodeResponse": {
            "type": "object",
            "properties": {
                "address": {
                    "type": "string"
                },
                "lat": {
                    "type": "number"
                },
                "lng": {
                    "type": "number"
                }
            }
        },
        "dto.RouteResponse": {
            "type": "object",
            "properties": {
                "route": {
                    "$ref": "#/definitions/domain.Route"
                },
                "success": {
                    "type": "boolean"
                }
            }
        },
        "dto.SelectionModeRequest": {
            "type": "object",
            "properties": {
                "mode": {
                    "type": "string",
                    "enum": [
                        "none",
                        "start",
                        "end"
                    ]
                }
            }
        },
        "dto.StatsResponse": {
            "type": "object",
            "properties": {
                "stats": {
                    "$ref": "#/definitions/domain.RouteStats"
                },
                "success": {
                    "type": "boolean"
                }
            }
        },
        "dto.UpdateRouteRequest": {
            "type": "object",
            "properties": {
                "city": {
                    "type": "string"
                },
                "description": {
                    "type": "string"
                },
                "difficulty": {
                    "type": "string"
                },
                "distance": {
                    "type": "number"
                },
                "duration": {
                    "type": "string"
                },
                "endLocation": {
                    "type": "object"
                },
                "startLocation": {
                    "type": "object"
                },
                "status": {
                    "type": "string"
                },
                "title": {
                    "type": "string"
                },
                "waypoints": {
                    "type": "array",
                    "items": {
                        "type": "object"
                    }
                }
            }
        },
        "errors.AppError": {
            "type": "object",
            "properties": {
                "code": {
                    "type": "string"
                },
                "details": {
                    "type": "object",
                    "additionalProperties": {}
                },
                "message": {
                    "type": "string"
                }
            }
        },
        "handler.DraftResponse": {
            "type": "object",
            "properties": {
                "data": {
                    "$ref": "#/definitions/planner.Snapshot"
                },
                "success": {
                    "type": "boolean"
                },
                "warning": {
                    "$ref": "#/definitions/errors.AppError"
                }
            }
        },
        "planner.Snapshot": {
            "type": "object",
            "properties": {
                "draft": {
                    "$ref": "#/definitions/domain.RouteDraft"
                },
                "endAddress": {
                    "type": "string"
                },
                "estimator": {
                    "type": "string"
                },
                "id": {
                    "type": "string"
                },
                "map": {
                    "type": "object"
                },
                "selectionMode": {
                    "type": "string"
                },
                "startAddress": {
                    "type": "string"
                }
            }
        },
        "utils.ErrorResponse": {
            "type": "object",
            "properties": {
                "error": {
                    "$ref": "#/definitions/errors.AppError"
                },
                "success": {
                    "type": "boolean"
                }
            }
        },
        "utils.Meta": {
            "type": "object",
            "properties": {
                "time_ms": {
                    "type": "number"
                },
                "total": {
                    "type": "integer"
                }
            }
        },
        "utils.SuccessResponse": {
            "type": "object",
            "properties": {
                "data": {},
                "meta": {
                    "$ref": "#/definitions/utils.Meta"
                },
                "success": {
                    "type": "boolean"
                }
            }
        }
    }
}`

// SwaggerInfo holds exported Swagger Info so clients can modify it
var SwaggerInfo = &swag.Spec{
	Version:          "1.0.0",
	Host:             "localhost:8080",
	BasePath:         "/",
	Schemes:          []string{"http", "https"},
	Title:            "Tourism Route Service API",
	Description:      "Сервис туристических маршрутов. Планирование маршрута по карте и адресам,\nоценка дистанции и времени, хранение маршрутов с правами владельца.\n\nОсновные возможности:\n- Черновики маршрутов с выбором начальной и конечной точки\n- Прямое и обратное геокодирование (Nominatim)\n- Оценка дистанции по прямой или по дорогам (OSRM)\n- Публичный каталог маршрутов и статистика",
	InfoInstanceName: "swagger",
	SwaggerTemplate:  docTemplate,
	LeftDelim:        "{{",
	RightDelim:       "}}",
}

func init() {
	swag.Register(SwaggerInfo.InstanceName(), SwaggerInfo)
}
