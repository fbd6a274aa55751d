// Package docs holds the OpenAPI document served under /swagger.
// Regenerate with: swag init -g cmd/api/main.go
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
		"/admin/batches": {
			"post": {
				"security": [
					{
						"BearerAuth": []
					}
				],
				"tags": [
					"admin"
				],
				"summary": "Create a batch",
				"parameters": [
					{
						"description": "Batch",
						"name": "request",
						"in": "body",
						"required": true,
						"schema": {
							"$ref": "#/definitions/dto.CreateBatchRequest"
						}
					}
				],
				"responses": {
					"201": {
						"description": "Created",
						"schema": {
							"allOf": [
								{
									"$ref": "#/definitions/dto.APIResponse"
								},
								{
									"type": "object",
									"properties": {
										"data": {
											"$ref": "#/definitions/dto.BatchResponse"
										}
									}
								}
							]
						}
					}
				}
			}
		},
		"/admin/batches/{id}/status": {
			"patch": {
				"security": [
					{
						"BearerAuth": []
					}
				],
				"tags": [
					"admin"
				],
				"summary": "Update batch status",
				"parameters": [
					{
						"type": "integer",
						"description": "Batch ID",
						"name": "id",
						"in": "path",
						"required": true
					},
					{
						"description": "Status",
						"name": "request",
						"in": "body",
						"required": true,
						"schema": {
							"$ref": "#/definitions/dto.UpdateBatchStatusRequest"
						}
					}
				],
				"responses": {
					"200": {
						"description": "OK",
						"schema": {
							"allOf": [
								{
									"$ref": "#/definitions/dto.APIResponse"
								},
								{
									"type": "object",
									"properties": {
										"data": {
											"$ref": "#/definitions/dto.BatchResponse"
										}
									}
								}
							]
						}
					}
				}
			}
		},
		"/admin/create-mentor": {
			"post": {
				"security": [
					{
						"BearerAuth": []
					}
				],
				"tags": [
					"admin"
				],
				"summary": "Create a mentor account",
				"parameters": [
					{
						"description": "Mentor account",
						"name": "request",
						"in": "body",
						"required": true,
						"schema": {
							"$ref": "#/definitions/dto.CreateMentorRequest"
						}
					}
				],
				"responses": {
					"201": {
						"description": "Created",
						"schema": {
							"allOf": [
								{
									"$ref": "#/definitions/dto.APIResponse"
								},
								{
									"type": "object",
									"properties": {
										"data": {
											"$ref": "#/definitions/dto.UserResponse"
										}
									}
								}
							]
						}
					},
					"409": {
						"description": "Email already exists",
						"schema": {
							"$ref": "#/definitions/dto.APIResponse"
						}
					}
				}
			}
		},
		"/admin/dashboard": {
			"get": {
				"security": [
					{
						"BearerAuth": []
					}
				],
				"tags": [
					"admin"
				],
				"summary": "Admin dashboard",
				"responses": {
					"200": {
						"description": "OK",
						"schema": {
							"allOf": [
								{
									"$ref": "#/definitions/dto.APIResponse"
								},
								{
									"type": "object",
									"properties": {
										"data": {
											"$ref": "#/definitions/dto.DashboardResponse"
										}
									}
								}
							]
						}
					}
				}
			}
		},
		"/admin/hires": {
			"post": {
				"security": [
					{
						"BearerAuth": []
					}
				],
				"tags": [
					"admin"
				],
				"summary": "Record a hire",
				"parameters": [
					{
						"description": "Hire",
						"name": "request",
						"in": "body",
						"required": true,
						"schema": {
							"$ref": "#/definitions/dto.CreateHireRequest"
						}
					}
				],
				"responses": {
					"201": {
						"description": "Created",
						"schema": {
							"allOf": [
								{
									"$ref": "#/definitions/dto.APIResponse"
								},
								{
									"type": "object",
									"properties": {
										"data": {
											"$ref": "#/definitions/dto.HireResponse"
										}
									}
								}
							]
						}
					},
					"409": {
						"description": "Hire already recorded for this email",
						"schema": {
							"$ref": "#/definitions/dto.APIResponse"
						}
					}
				}
			}
		},
		"/admin/users/{id}/active": {
			"patch": {
				"security": [
					{
						"BearerAuth": []
					}
				],
				"tags": [
					"admin"
				],
				"summary": "Toggle account activity",
				"parameters": [
					{
						"type": "integer",
						"description": "User ID",
						"name": "id",
						"in": "path",
						"required": true
					},
					{
						"description": "Active flag",
						"name": "request",
						"in": "body",
						"required": true,
						"schema": {
							"$ref": "#/definitions/dto.SetUserActiveRequest"
						}
					}
				],
				"responses": {
					"200": {
						"description": "OK",
						"schema": {
							"allOf": [
								{
									"$ref": "#/definitions/dto.APIResponse"
								},
								{
									"type": "object",
									"properties": {
										"data": {
											"$ref": "#/definitions/dto.UserResponse"
										}
									}
								}
							]
						}
					}
				}
			}
		},
		"/auth/forgot": {
			"post": {
				"consumes": [
					"application/json"
				],
				"produces": [
					"application/json"
				],
				"tags": [
					"auth"
				],
				"summary": "Request a password reset",
				"parameters": [
					{
						"description": "Account email",
						"name": "request",
						"in": "body",
						"required": true,
						"schema": {
							"$ref": "#/definitions/dto.ForgotPasswordRequest"
						}
					}
				],
				"responses": {
					"200": {
						"description": "OK",
						"schema": {
							"allOf": [
								{
									"$ref": "#/definitions/dto.APIResponse"
								},
								{
									"type": "object",
									"properties": {
										"data": {
											"$ref": "#/definitions/dto.ForgotPasswordResponse"
										}
									}
								}
							]
						}
					}
				}
			}
		},
		"/auth/login": {
			"post": {
				"consumes": [
					"application/json"
				],
				"produces": [
					"application/json"
				],
				"tags": [
					"auth"
				],
				"summary": "User login",
				"parameters": [
					{
						"description": "Login credentials",
						"name": "request",
						"in": "body",
						"required": true,
						"schema": {
							"$ref": "#/definitions/dto.LoginRequest"
						}
					}
				],
				"responses": {
					"200": {
						"description": "OK",
						"schema": {
							"allOf": [
								{
									"$ref": "#/definitions/dto.APIResponse"
								},
								{
									"type": "object",
									"properties": {
										"data": {
											"$ref": "#/definitions/dto.TokenResponse"
										}
									}
								}
							]
						}
					},
					"401": {
						"description": "Invalid credentials",
						"schema": {
							"$ref": "#/definitions/dto.APIResponse"
						}
					},
					"403": {
						"description": "Account disabled",
						"schema": {
							"$ref": "#/definitions/dto.APIResponse"
						}
					}
				}
			}
		},
		"/auth/refresh": {
			"post": {
				"consumes": [
					"application/json"
				],
				"produces": [
					"application/json"
				],
				"tags": [
					"auth"
				],
				"summary": "Refresh the token pair",
				"parameters": [
					{
						"description": "Refresh token",
						"name": "request",
						"in": "body",
						"required": true,
						"schema": {
							"$ref": "#/definitions/dto.RefreshTokenRequest"
						}
					}
				],
				"responses": {
					"200": {
						"description": "OK",
						"schema": {
							"allOf": [
								{
									"$ref": "#/definitions/dto.APIResponse"
								},
								{
									"type": "object",
									"properties": {
										"data": {
											"$ref": "#/definitions/dto.TokenResponse"
										}
									}
								}
							]
						}
					},
					"401": {
						"description": "Invalid refresh token",
						"schema": {
							"$ref": "#/definitions/dto.APIResponse"
						}
					}
				}
			}
		},
		"/auth/register/mentor": {
			"post": {
				"description": "Multipart form: \"data\" holds the JSON profile, \"resume\" is an optional file",
				"consumes": [
					"multipart/form-data"
				],
				"produces": [
					"application/json"
				],
				"tags": [
					"auth"
				],
				"summary": "Register a mentor",
				"parameters": [
					{
						"type": "string",
						"description": "dto.RegisterMentorRequest as JSON",
						"name": "data",
						"in": "formData",
						"required": true
					},
					{
						"type": "file",
						"description": "Resume",
						"name": "resume",
						"in": "formData"
					}
				],
				"responses": {
					"201": {
						"description": "Created",
						"schema": {
							"allOf": [
								{
									"$ref": "#/definitions/dto.APIResponse"
								},
								{
									"type": "object",
									"properties": {
										"data": {
											"$ref": "#/definitions/dto.UserResponse"
										}
									}
								}
							]
						}
					},
					"409": {
						"description": "Email already exists",
						"schema": {
							"$ref": "#/definitions/dto.APIResponse"
						}
					}
				}
			}
		},
		"/auth/register/student": {
			"post": {
				"description": "Multipart form: \"data\" holds the JSON profile, \"photo\" and \"document\" are optional files",
				"consumes": [
					"multipart/form-data"
				],
				"produces": [
					"application/json"
				],
				"tags": [
					"auth"
				],
				"summary": "Register a student",
				"parameters": [
					{
						"type": "string",
						"description": "dto.RegisterStudentRequest as JSON",
						"name": "data",
						"in": "formData",
						"required": true
					},
					{
						"type": "file",
						"description": "Profile photo",
						"name": "photo",
						"in": "formData"
					},
					{
						"type": "file",
						"description": "Resume",
						"name": "document",
						"in": "formData"
					}
				],
				"responses": {
					"201": {
						"description": "Created",
						"schema": {
							"allOf": [
								{
									"$ref": "#/definitions/dto.APIResponse"
								},
								{
									"type": "object",
									"properties": {
										"data": {
											"$ref": "#/definitions/dto.UserResponse"
										}
									}
								}
							]
						}
					},
					"400": {
						"description": "Validation failed",
						"schema": {
							"$ref": "#/definitions/dto.APIResponse"
						}
					},
					"409": {
						"description": "Email already exists",
						"schema": {
							"$ref": "#/definitions/dto.APIResponse"
						}
					}
				}
			}
		},
		"/auth/reset": {
			"post": {
				"consumes": [
					"application/json"
				],
				"produces": [
					"application/json"
				],
				"tags": [
					"auth"
				],
				"summary": "Reset a password",
				"parameters": [
					{
						"description": "Token and new password",
						"name": "request",
						"in": "body",
						"required": true,
						"schema": {
							"$ref": "#/definitions/dto.ResetPasswordRequest"
						}
					}
				],
				"responses": {
					"200": {
						"description": "OK",
						"schema": {
							"allOf": [
								{
									"$ref": "#/definitions/dto.APIResponse"
								},
								{
									"type": "object",
									"properties": {
										"data": {
											"$ref": "#/definitions/dto.MessageResponse"
										}
									}
								}
							]
						}
					},
					"400": {
						"description": "Invalid or expired token",
						"schema": {
							"$ref": "#/definitions/dto.APIResponse"
						}
					}
				}
			}
		},
		"/student/StudentDetails": {
			"get": {
				"security": [
					{
						"BearerAuth": []
					}
				],
				"tags": [
					"student"
				],
				"summary": "Current account",
				"responses": {
					"200": {
						"description": "OK",
						"schema": {
							"allOf": [
								{
									"$ref": "#/definitions/dto.APIResponse"
								},
								{
									"type": "object",
									"properties": {
										"data": {
											"$ref": "#/definitions/dto.UserResponse"
										}
									}
								}
							]
						}
					}
				}
			}
		},
		"/users/me": {
			"get": {
				"security": [
					{
						"BearerAuth": []
					}
				],
				"tags": [
					"users"
				],
				"summary": "Current user",
				"responses": {
					"200": {
						"description": "OK",
						"schema": {
							"allOf": [
								{
									"$ref": "#/definitions/dto.APIResponse"
								},
								{
									"type": "object",
									"properties": {
										"data": {
											"$ref": "#/definitions/dto.MeResponse"
										}
									}
								}
							]
						}
					}
				}
			}
		},
		"/users/mentors": {
			"get": {
				"security": [
					{
						"BearerAuth": []
					}
				],
				"tags": [
					"users"
				],
				"summary": "List mentors",
				"parameters": [
					{
						"type": "integer",
						"description": "Offset",
						"name": "skip",
						"in": "query"
					},
					{
						"type": "integer",
						"description": "Page size (1-100)",
						"name": "limit",
						"in": "query"
					},
					{
						"type": "string",
						"description": "Technology name",
						"name": "technology",
						"in": "query"
					},
					{
						"type": "integer",
						"description": "Minimum years of experience",
						"name": "min_years",
						"in": "query"
					},
					{
						"type": "string",
						"description": "Name, email or phone",
						"name": "search",
						"in": "query"
					}
				],
				"responses": {
					"200": {
						"description": "OK",
						"schema": {
							"allOf": [
								{
									"$ref": "#/definitions/dto.APIResponse"
								},
								{
									"type": "object",
									"properties": {
										"data": {
											"type": "array",
											"items": {
												"$ref": "#/definitions/dto.MentorResponse"
											}
										}
									}
								}
							]
						}
					}
				}
			}
		},
		"/users/mentors/{id}": {
			"get": {
				"security": [
					{
						"BearerAuth": []
					}
				],
				"tags": [
					"users"
				],
				"summary": "Get mentor profile",
				"parameters": [
					{
						"type": "integer",
						"description": "Mentor profile ID",
						"name": "id",
						"in": "path",
						"required": true
					}
				],
				"responses": {
					"200": {
						"description": "OK",
						"schema": {
							"allOf": [
								{
									"$ref": "#/definitions/dto.APIResponse"
								},
								{
									"type": "object",
									"properties": {
										"data": {
											"$ref": "#/definitions/dto.MentorResponse"
										}
									}
								}
							]
						}
					},
					"404": {
						"description": "Mentor not found",
						"schema": {
							"$ref": "#/definitions/dto.APIResponse"
						}
					}
				}
			}
		},
		"/users/students": {
			"get": {
				"security": [
					{
						"BearerAuth": []
					}
				],
				"tags": [
					"users"
				],
				"summary": "List students",
				"parameters": [
					{
						"type": "integer",
						"description": "Offset",
						"name": "skip",
						"in": "query"
					},
					{
						"type": "integer",
						"description": "Page size (1-100)",
						"name": "limit",
						"in": "query"
					},
					{
						"type": "string",
						"description": "Name, email or phone",
						"name": "search",
						"in": "query"
					}
				],
				"responses": {
					"200": {
						"description": "OK",
						"schema": {
							"allOf": [
								{
									"$ref": "#/definitions/dto.APIResponse"
								},
								{
									"type": "object",
									"properties": {
										"data": {
											"type": "array",
											"items": {
												"$ref": "#/definitions/dto.StudentResponse"
											}
										}
									}
								}
							]
						}
					}
				}
			}
		},
		"/users/students/{id}": {
			"get": {
				"security": [
					{
						"BearerAuth": []
					}
				],
				"tags": [
					"users"
				],
				"summary": "Get student profile",
				"parameters": [
					{
						"type": "integer",
						"description": "Student profile ID",
						"name": "id",
						"in": "path",
						"required": true
					}
				],
				"responses": {
					"200": {
						"description": "OK",
						"schema": {
							"allOf": [
								{
									"$ref": "#/definitions/dto.APIResponse"
								},
								{
									"type": "object",
									"properties": {
										"data": {
											"$ref": "#/definitions/dto.StudentResponse"
										}
									}
								}
							]
						}
					},
					"404": {
						"description": "Student not found",
						"schema": {
							"$ref": "#/definitions/dto.APIResponse"
						}
					}
				}
			}
		},
		"/users/{id}": {
			"get": {
				"security": [
					{
						"BearerAuth": []
					}
				],
				"tags": [
					"users"
				],
				"summary": "Get user by ID",
				"parameters": [
					{
						"type": "integer",
						"description": "User ID",
						"name": "id",
						"in": "path",
						"required": true
					}
				],
				"responses": {
					"200": {
						"description": "OK",
						"schema": {
							"allOf": [
								{
									"$ref": "#/definitions/dto.APIResponse"
								},
								{
									"type": "object",
									"properties": {
										"data": {
											"$ref": "#/definitions/dto.MeResponse"
										}
									}
								}
							]
						}
					},
					"404": {
						"description": "User not found",
						"schema": {
							"$ref": "#/definitions/dto.APIResponse"
						}
					}
				}
			},
			"delete": {
				"security": [
					{
						"BearerAuth": []
					}
				],
				"tags": [
					"users"
				],
				"summary": "Delete user",
				"parameters": [
					{
						"type": "integer",
						"description": "User ID",
						"name": "id",
						"in": "path",
						"required": true
					}
				],
				"responses": {
					"200": {
						"description": "OK",
						"schema": {
							"allOf": [
								{
									"$ref": "#/definitions/dto.APIResponse"
								},
								{
									"type": "object",
									"properties": {
										"data": {
											"$ref": "#/definitions/dto.MessageResponse"
										}
									}
								}
							]
						}
					},
					"409": {
						"description": "User has hire records",
						"schema": {
							"$ref": "#/definitions/dto.APIResponse"
						}
					}
				}
			}
		}
	},
	"definitions": {
		"dto.APIResponse": {
			"type": "object",
			"properties": {
				"success": {
					"type": "boolean"
				},
				"message": {
					"type": "string"
				},
				"data": {},
				"error": {
					"$ref": "#/definitions/dto.ErrorDetail"
				},
				"timestamp": {
					"type": "string"
				}
			}
		},
		"dto.BatchResponse": {
			"type": "object",
			"properties": {
				"id": {
					"type": "integer"
				},
				"batchName": {
					"type": "string"
				},
				"noOfStudents": {
					"type": "integer"
				},
				"startDate": {
					"type": "string"
				},
				"completionDate": {
					"type": "string"
				},
				"status": {
					"type": "string"
				},
				"mentorId": {
					"type": "integer"
				}
			}
		},
		"dto.CreateBatchRequest": {
			"type": "object",
			"required": [
				"batchName"
			],
			"properties": {
				"batchName": {
					"type": "string"
				},
				"noOfStudents": {
					"type": "integer"
				},
				"startDate": {
					"type": "string"
				},
				"completionDate": {
					"type": "string"
				},
				"status": {
					"type": "string"
				},
				"mentorId": {
					"type": "integer"
				}
			}
		},
		"dto.CreateHireRequest": {
			"type": "object",
			"required": [
				"userId",
				"fullname",
				"email",
				"hiredCompany",
				"hiredDate"
			],
			"properties": {
				"userId": {
					"type": "integer"
				},
				"fullname": {
					"type": "string"
				},
				"email": {
					"type": "string"
				},
				"hiredCompany": {
					"type": "string"
				},
				"hiredDate": {
					"type": "string"
				},
				"batchId": {
					"type": "integer"
				},
				"dashboardId": {
					"type": "integer"
				}
			}
		},
		"dto.CreateMentorRequest": {
			"type": "object",
			"required": [
				"email",
				"password"
			],
			"properties": {
				"email": {
					"type": "string"
				},
				"fullName": {
					"type": "string"
				},
				"phoneNumber": {
					"type": "string"
				},
				"password": {
					"type": "string"
				}
			}
		},
		"dto.DashboardResponse": {
			"type": "object",
			"properties": {
				"id": {
					"type": "integer"
				},
				"batches_completed_count": {
					"type": "integer"
				},
				"students_hired": {
					"type": "integer"
				},
				"no_of_students": {
					"type": "integer"
				},
				"no_of_mentors": {
					"type": "integer"
				}
			}
		},
		"dto.ErrorCode": {
			"type": "string",
			"enum": [
				"AUTH_001",
				"AUTH_002",
				"AUTH_003",
				"AUTH_004",
				"AUTH_005",
				"AUTH_006",
				"AUTH_007",
				"AUTH_008",
				"RES_001",
				"RES_002",
				"RES_003",
				"VAL_001",
				"SRV_001",
				"SRV_002",
				"SRV_003"
			],
			"x-enum-varnames": [
				"ErrorCodeInvalidCredentials",
				"ErrorCodeInvalidEmail",
				"ErrorCodeInvalidPassword",
				"ErrorCodeInvalidResetToken",
				"ErrorCodeInvalidToken",
				"ErrorCodeAccountDisabled",
				"ErrorCodeForbidden",
				"ErrorCodeUnauthorized",
				"ErrorCodeResourceNotFound",
				"ErrorCodeResourceAlreadyExists",
				"ErrorCodeResourceInvalid",
				"ErrorCodeValidationFailed",
				"ErrorCodeInternalServer",
				"ErrorCodeDatabaseError",
				"ErrorCodeExternalServiceError"
			]
		},
		"dto.ErrorDetail": {
			"type": "object",
			"properties": {
				"code": {
					"$ref": "#/definitions/dto.ErrorCode"
				},
				"message": {
					"type": "string"
				},
				"field": {
					"type": "string"
				},
				"severity": {
					"$ref": "#/definitions/dto.ErrorSeverity"
				},
				"details": {}
			}
		},
		"dto.ErrorSeverity": {
			"type": "string",
			"enum": [
				"INFO",
				"WARNING",
				"ERROR",
				"CRITICAL"
			],
			"x-enum-varnames": [
				"ErrorSeverityInfo",
				"ErrorSeverityWarning",
				"ErrorSeverityError",
				"ErrorSeverityCritical"
			]
		},
		"dto.ForgotPasswordRequest": {
			"type": "object",
			"required": [
				"email"
			],
			"properties": {
				"email": {
					"type": "string"
				}
			}
		},
		"dto.ForgotPasswordResponse": {
			"type": "object",
			"properties": {
				"message": {
					"type": "string"
				},
				"token": {
					"type": "string"
				}
			}
		},
		"dto.HireResponse": {
			"type": "object",
			"properties": {
				"id": {
					"type": "integer"
				},
				"userId": {
					"type": "integer"
				},
				"fullname": {
					"type": "string"
				},
				"email": {
					"type": "string"
				},
				"hiredCompany": {
					"type": "string"
				},
				"hiredDate": {
					"type": "string"
				},
				"batchId": {
					"type": "integer"
				},
				"dashboardId": {
					"type": "integer"
				},
				"dashboard": {
					"$ref": "#/definitions/dto.DashboardResponse"
				}
			}
		},
		"dto.LoginRequest": {
			"type": "object",
			"required": [
				"email",
				"password"
			],
			"properties": {
				"email": {
					"type": "string"
				},
				"password": {
					"type": "string"
				}
			}
		},
		"dto.MeResponse": {
			"type": "object",
			"properties": {
				"user": {
					"$ref": "#/definitions/dto.UserResponse"
				},
				"studentProfile": {
					"$ref": "#/definitions/dto.StudentResponse"
				},
				"mentorProfile": {
					"$ref": "#/definitions/dto.MentorResponse"
				}
			}
		},
		"dto.MentorResponse": {
			"type": "object",
			"properties": {
				"id": {
					"type": "integer"
				},
				"user": {
					"$ref": "#/definitions/dto.UserResponse"
				},
				"name": {
					"type": "string"
				},
				"phoneNumber": {
					"type": "string"
				},
				"dob": {
					"type": "string"
				},
				"gender": {
					"type": "string"
				},
				"address": {
					"type": "string"
				},
				"totalExperienceYears": {
					"type": "integer"
				},
				"totalExperienceMonths": {
					"type": "integer"
				},
				"experienceSummary": {
					"type": "string"
				},
				"preferredMode": {
					"type": "string"
				},
				"availabilityHoursPerWeek": {
					"type": "integer"
				},
				"technologies": {
					"type": "array",
					"items": {
						"type": "string"
					}
				},
				"resumeUrl": {
					"type": "string"
				},
				"linkedinUrl": {
					"type": "string"
				},
				"portfolioUrl": {
					"type": "string"
				}
			}
		},
		"dto.MessageResponse": {
			"type": "object",
			"properties": {
				"message": {
					"type": "string"
				}
			}
		},
		"dto.RefreshTokenRequest": {
			"type": "object",
			"required": [
				"refresh_token"
			],
			"properties": {
				"refresh_token": {
					"type": "string"
				}
			}
		},
		"dto.ResetPasswordRequest": {
			"type": "object",
			"required": [
				"token",
				"new_password"
			],
			"properties": {
				"token": {
					"type": "string"
				},
				"new_password": {
					"type": "string"
				}
			}
		},
		"dto.SetUserActiveRequest": {
			"type": "object",
			"required": [
				"is_active"
			],
			"properties": {
				"is_active": {
					"type": "boolean"
				}
			}
		},
		"dto.StudentResponse": {
			"type": "object",
			"properties": {
				"id": {
					"type": "integer"
				},
				"user": {
					"$ref": "#/definitions/dto.UserResponse"
				},
				"firstName": {
					"type": "string"
				},
				"lastName": {
					"type": "string"
				},
				"phoneNumber": {
					"type": "string"
				},
				"whatsappNumber": {
					"type": "string"
				},
				"dob": {
					"type": "string"
				},
				"gender": {
					"type": "string"
				},
				"address": {
					"type": "string"
				},
				"courseInterest": {
					"type": "string"
				},
				"isReferred": {
					"type": "boolean"
				},
				"referralCode": {
					"type": "string"
				},
				"photoUrl": {
					"type": "string"
				},
				"resumeUrl": {
					"type": "string"
				}
			}
		},
		"dto.TokenResponse": {
			"type": "object",
			"properties": {
				"access_token": {
					"type": "string"
				},
				"refresh_token": {
					"type": "string"
				},
				"token_type": {
					"type": "string"
				},
				"expires_in": {
					"type": "integer"
				},
				"access_token_expires_at": {
					"type": "string"
				},
				"refresh_token_expires_at": {
					"type": "string"
				}
			}
		},
		"dto.UpdateBatchStatusRequest": {
			"type": "object",
			"required": [
				"status"
			],
			"properties": {
				"status": {
					"type": "string"
				}
			}
		},
		"dto.UserResponse": {
			"type": "object",
			"properties": {
				"id": {
					"type": "integer"
				},
				"email": {
					"type": "string"
				},
				"full_name": {
					"type": "string"
				},
				"phone_number": {
					"type": "string"
				},
				"role": {
					"type": "string"
				},
				"is_active": {
					"type": "boolean"
				}
			}
		}
	},
	"securityDefinitions": {
		"BearerAuth": {
			"description": "Access token as \"Bearer <token>\"",
			"type": "apiKey",
			"name": "Authorization",
			"in": "header"
		}
	}
}`

// SwaggerInfo holds exported Swagger Info so clients can modify it
var SwaggerInfo = &swag.Spec{
	Version:          "1.0",
	Host:             "localhost:8080",
	BasePath:         "/",
	Schemes:          []string{},
	Title:            "LMS API",
	Description:      "Learning management backend: student and mentor registration, authentication, batches and placements.",
	InfoInstanceName: "swagger",
	SwaggerTemplate:  docTemplate,
	LeftDelim:        "{{",
	RightDelim:       "}}",
}

func init() {
	swag.Register(SwaggerInfo.InstanceName(), SwaggerInfo)
}
