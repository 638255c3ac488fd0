// Package docs registers the OpenAPI document served under /swagger. It mirrors the handler
// annotations; regenerate with: swag init -g cmd/ccl_backend/main.go -o cmd/docs
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
        "/bank-accounts": {
            "get": {
                "security": [
                    {
                        "BearerAuth": []
                    }
                ],
                "produces": [
                    "application/json"
                ],
                "tags": [
                    "bank-accounts"
                ],
                "summary": "List bank accounts",
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "type": "array",
                            "items": {
                                "$ref": "#/definitions/domain.BankAccount"
                            }
                        }
                    }
                }
            },
            "post": {
                "security": [
                    {
                        "BearerAuth": []
                    }
                ],
                "consumes": [
                    "application/json"
                ],
                "produces": [
                    "application/json"
                ],
                "tags": [
                    "bank-accounts"
                ],
                "summary": "Register a bank account",
                "parameters": [
                    {
                        "description": "Bank account",
                        "name": "account",
                        "in": "body",
                        "required": true,
                        "schema": {
                            "$ref": "#/definitions/dto.CreateBankAccountRequest"
                        }
                    }
                ],
                "responses": {
                    "201": {
                        "description": "Created",
                        "schema": {
                            "$ref": "#/definitions/domain.BankAccount"
                        }
                    },
                    "400": {
                        "description": "Invalid input",
                        "schema": {
                            "type": "object",
                            "additionalProperties": {
                                "type": "string"
                            }
                        }
                    },
                    "404": {
                        "description": "Bank not found",
                        "schema": {
                            "type": "object",
                            "additionalProperties": {
                                "type": "string"
                            }
                        }
                    },
                    "409": {
                        "description": "Account number already registered",
                        "schema": {
                            "type": "object",
                            "additionalProperties": {
                                "type": "string"
                            }
                        }
                    }
                }
            }
        },
        "/bank-accounts/{id}": {
            "get": {
                "security": [
                    {
                        "BearerAuth": []
                    }
                ],
                "produces": [
                    "application/json"
                ],
                "tags": [
                    "bank-accounts"
                ],
                "summary": "Get a bank account",
                "parameters": [
                    {
                        "description": "Bank account ID",
                        "name": "id",
                        "in": "path",
                        "required": true,
                        "type": "string"
                    }
                ],
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "$ref": "#/definitions/domain.BankAccount"
                        }
                    },
                    "404": {
                        "description": "Bank account not found",
                        "schema": {
                            "type": "object",
                            "additionalProperties": {
                                "type": "string"
                            }
                        }
                    }
                }
            }
        },
        "/ledger/accounts/{code}/balance": {
            "get": {
                "security": [
                    {
                        "BearerAuth": []
                    }
                ],
                "description": "Sum of debits minus sum of credits for an account code such as customer:<id> or treasury",
                "produces": [
                    "application/json"
                ],
                "tags": [
                    "ledger"
                ],
                "summary": "Get the journal balance of an account",
                "parameters": [
                    {
                        "description": "Account code",
                        "name": "code",
                        "in": "path",
                        "required": true,
                        "type": "string"
                    }
                ],
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "$ref": "#/definitions/dto.AccountBalanceResponse"
                        }
                    },
                    "400": {
                        "description": "Malformed account code",
                        "schema": {
                            "type": "object",
                            "additionalProperties": {
                                "type": "string"
                            }
                        }
                    }
                }
            }
        },
        "/ledger/accounts/{code}/entries": {
            "get": {
                "security": [
                    {
                        "BearerAuth": []
                    }
                ],
                "produces": [
                    "application/json"
                ],
                "tags": [
                    "ledger"
                ],
                "summary": "List ledger entries touching an account",
                "parameters": [
                    {
                        "description": "Account code",
                        "name": "code",
                        "in": "path",
                        "required": true,
                        "type": "string"
                    },
                    {
                        "description": "From date (YYYY-MM-DD)",
                        "name": "from",
                        "in": "query",
                        "type": "string"
                    },
                    {
                        "description": "To date (YYYY-MM-DD), inclusive",
                        "name": "to",
                        "in": "query",
                        "type": "string"
                    },
                    {
                        "description": "Limit",
                        "name": "limit",
                        "in": "query",
                        "type": "integer",
                        "default": 50
                    },
                    {
                        "description": "Pagination token",
                        "name": "nextToken",
                        "in": "query",
                        "type": "string"
                    }
                ],
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "$ref": "#/definitions/dto.ListEntriesResponse"
                        }
                    }
                }
            }
        },
        "/ledger/entries": {
            "post": {
                "security": [
                    {
                        "BearerAuth": []
                    }
                ],
                "description": "Appends one double-entry line. Treasury and bank accounts are only posted through vouchers.",
                "consumes": [
                    "application/json"
                ],
                "produces": [
                    "application/json"
                ],
                "tags": [
                    "ledger"
                ],
                "summary": "Post a standalone ledger entry",
                "parameters": [
                    {
                        "description": "Entry",
                        "name": "entry",
                        "in": "body",
                        "required": true,
                        "schema": {
                            "$ref": "#/definitions/dto.PostEntryRequest"
                        }
                    }
                ],
                "responses": {
                    "201": {
                        "description": "Created",
                        "schema": {
                            "$ref": "#/definitions/dto.LedgerEntryResponse"
                        }
                    },
                    "400": {
                        "description": "Invalid input",
                        "schema": {
                            "type": "object",
                            "additionalProperties": {
                                "type": "string"
                            }
                        }
                    }
                }
            }
        },
        "/payroll-runs": {
            "get": {
                "security": [
                    {
                        "BearerAuth": []
                    }
                ],
                "produces": [
                    "application/json"
                ],
                "tags": [
                    "payroll"
                ],
                "summary": "List payroll runs",
                "parameters": [
                    {
                        "description": "Limit",
                        "name": "limit",
                        "in": "query",
                        "type": "integer",
                        "default": 12
                    },
                    {
                        "description": "Offset",
                        "name": "offset",
                        "in": "query",
                        "type": "integer",
                        "default": 0
                    }
                ],
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "type": "array",
                            "items": {
                                "$ref": "#/definitions/domain.PayrollRun"
                            }
                        }
                    }
                }
            },
            "post": {
                "security": [
                    {
                        "BearerAuth": []
                    }
                ],
                "description": "Opens a DRAFT run for the month with one item per active employee",
                "consumes": [
                    "application/json"
                ],
                "produces": [
                    "application/json"
                ],
                "tags": [
                    "payroll"
                ],
                "summary": "Create a payroll run",
                "parameters": [
                    {
                        "description": "Month (YYYY-MM)",
                        "name": "run",
                        "in": "body",
                        "required": true,
                        "schema": {
                            "$ref": "#/definitions/dto.CreatePayrollRunRequest"
                        }
                    }
                ],
                "responses": {
                    "201": {
                        "description": "Created",
                        "schema": {
                            "$ref": "#/definitions/domain.PayrollRun"
                        }
                    },
                    "400": {
                        "description": "Invalid input",
                        "schema": {
                            "type": "object",
                            "additionalProperties": {
                                "type": "string"
                            }
                        }
                    },
                    "409": {
                        "description": "A run for the month already exists",
                        "schema": {
                            "type": "object",
                            "additionalProperties": {
                                "type": "string"
                            }
                        }
                    }
                }
            }
        },
        "/payroll-runs/{id}": {
            "get": {
                "security": [
                    {
                        "BearerAuth": []
                    }
                ],
                "produces": [
                    "application/json"
                ],
                "tags": [
                    "payroll"
                ],
                "summary": "Get a payroll run with its items",
                "parameters": [
                    {
                        "description": "Run ID",
                        "name": "id",
                        "in": "path",
                        "required": true,
                        "type": "string"
                    }
                ],
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "$ref": "#/definitions/domain.PayrollRun"
                        }
                    },
                    "404": {
                        "description": "Run not found",
                        "schema": {
                            "type": "object",
                            "additionalProperties": {
                                "type": "string"
                            }
                        }
                    }
                }
            }
        },
        "/payroll-runs/{id}/approve": {
            "post": {
                "security": [
                    {
                        "BearerAuth": []
                    }
                ],
                "description": "Pays every item with a positive net through one payment voucher, atomically",
                "consumes": [
                    "application/json"
                ],
                "produces": [
                    "application/json"
                ],
                "tags": [
                    "payroll"
                ],
                "summary": "Approve a payroll run",
                "parameters": [
                    {
                        "description": "Run ID",
                        "name": "id",
                        "in": "path",
                        "required": true,
                        "type": "string"
                    },
                    {
                        "description": "Payment method, defaults to CASH",
                        "name": "payment",
                        "in": "body",
                        "schema": {
                            "$ref": "#/definitions/dto.ApprovePayrollRequest"
                        }
                    }
                ],
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "$ref": "#/definitions/domain.PayrollRun"
                        }
                    },
                    "409": {
                        "description": "Run already approved",
                        "schema": {
                            "type": "object",
                            "additionalProperties": {
                                "type": "string"
                            }
                        }
                    },
                    "422": {
                        "description": "Insufficient balance",
                        "schema": {
                            "type": "object",
                            "additionalProperties": {
                                "type": "string"
                            }
                        }
                    }
                }
            }
        },
        "/payroll-runs/{id}/items": {
            "put": {
                "security": [
                    {
                        "BearerAuth": []
                    }
                ],
                "consumes": [
                    "application/json"
                ],
                "produces": [
                    "application/json"
                ],
                "tags": [
                    "payroll"
                ],
                "summary": "Replace the items of a DRAFT run",
                "parameters": [
                    {
                        "description": "Run ID",
                        "name": "id",
                        "in": "path",
                        "required": true,
                        "type": "string"
                    },
                    {
                        "description": "Items",
                        "name": "items",
                        "in": "body",
                        "required": true,
                        "schema": {
                            "$ref": "#/definitions/dto.ReplacePayrollItemsRequest"
                        }
                    }
                ],
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "$ref": "#/definitions/domain.PayrollRun"
                        }
                    },
                    "400": {
                        "description": "Invalid input",
                        "schema": {
                            "type": "object",
                            "additionalProperties": {
                                "type": "string"
                            }
                        }
                    },
                    "409": {
                        "description": "Run is not a draft",
                        "schema": {
                            "type": "object",
                            "additionalProperties": {
                                "type": "string"
                            }
                        }
                    }
                }
            }
        },
        "/payroll-runs/{id}/unapprove": {
            "post": {
                "security": [
                    {
                        "BearerAuth": []
                    }
                ],
                "produces": [
                    "application/json"
                ],
                "tags": [
                    "payroll"
                ],
                "summary": "Return an approved payroll run to DRAFT",
                "parameters": [
                    {
                        "description": "Run ID",
                        "name": "id",
                        "in": "path",
                        "required": true,
                        "type": "string"
                    }
                ],
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "$ref": "#/definitions/domain.PayrollRun"
                        }
                    },
                    "409": {
                        "description": "Run is not approved",
                        "schema": {
                            "type": "object",
                            "additionalProperties": {
                                "type": "string"
                            }
                        }
                    }
                }
            }
        },
        "/postings/fees": {
            "post": {
                "security": [
                    {
                        "BearerAuth": []
                    }
                ],
                "consumes": [
                    "application/json"
                ],
                "produces": [
                    "application/json"
                ],
                "tags": [
                    "postings"
                ],
                "summary": "Journal an additional agent fee",
                "parameters": [
                    {
                        "description": "Fee",
                        "name": "fee",
                        "in": "body",
                        "required": true,
                        "schema": {
                            "$ref": "#/definitions/dto.PostAdditionalFeeRequest"
                        }
                    }
                ],
                "responses": {
                    "201": {
                        "description": "Created",
                        "schema": {
                            "$ref": "#/definitions/dto.LedgerEntryResponse"
                        }
                    },
                    "404": {
                        "description": "Agent or customer not found",
                        "schema": {
                            "type": "object",
                            "additionalProperties": {
                                "type": "string"
                            }
                        }
                    }
                }
            }
        },
        "/postings/invoices": {
            "post": {
                "security": [
                    {
                        "BearerAuth": []
                    }
                ],
                "consumes": [
                    "application/json"
                ],
                "produces": [
                    "application/json"
                ],
                "tags": [
                    "postings"
                ],
                "summary": "Journal an invoice",
                "parameters": [
                    {
                        "description": "Invoice",
                        "name": "invoice",
                        "in": "body",
                        "required": true,
                        "schema": {
                            "$ref": "#/definitions/dto.PostInvoiceRequest"
                        }
                    }
                ],
                "responses": {
                    "201": {
                        "description": "Created",
                        "schema": {
                            "$ref": "#/definitions/dto.InvoicePostingResponse"
                        }
                    },
                    "400": {
                        "description": "Invalid input",
                        "schema": {
                            "type": "object",
                            "additionalProperties": {
                                "type": "string"
                            }
                        }
                    },
                    "404": {
                        "description": "Customer not found",
                        "schema": {
                            "type": "object",
                            "additionalProperties": {
                                "type": "string"
                            }
                        }
                    }
                }
            }
        },
        "/postings/trips": {
            "post": {
                "security": [
                    {
                        "BearerAuth": []
                    }
                ],
                "consumes": [
                    "application/json"
                ],
                "produces": [
                    "application/json"
                ],
                "tags": [
                    "postings"
                ],
                "summary": "Journal a shipping trip cost",
                "parameters": [
                    {
                        "description": "Trip",
                        "name": "trip",
                        "in": "body",
                        "required": true,
                        "schema": {
                            "$ref": "#/definitions/dto.PostTripRequest"
                        }
                    }
                ],
                "responses": {
                    "201": {
                        "description": "Created",
                        "schema": {
                            "$ref": "#/definitions/dto.LedgerEntryResponse"
                        }
                    },
                    "404": {
                        "description": "Agent not found",
                        "schema": {
                            "type": "object",
                            "additionalProperties": {
                                "type": "string"
                            }
                        }
                    }
                }
            }
        },
        "/reports/bank/{id}": {
            "get": {
                "security": [
                    {
                        "BearerAuth": []
                    }
                ],
                "produces": [
                    "application/json"
                ],
                "tags": [
                    "reports"
                ],
                "summary": "Generate bank account report",
                "parameters": [
                    {
                        "description": "Bank account ID",
                        "name": "id",
                        "in": "path",
                        "required": true,
                        "type": "string"
                    },
                    {
                        "description": "From date (YYYY-MM-DD)",
                        "name": "from",
                        "in": "query",
                        "type": "string",
                        "default": "first of the month"
                    },
                    {
                        "description": "To date (YYYY-MM-DD)",
                        "name": "to",
                        "in": "query",
                        "type": "string",
                        "default": "current date"
                    }
                ],
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "$ref": "#/definitions/domain.BankReport"
                        }
                    },
                    "404": {
                        "description": "Bank account not found",
                        "schema": {
                            "type": "object",
                            "additionalProperties": {
                                "type": "string"
                            }
                        }
                    }
                }
            }
        },
        "/reports/general-journal": {
            "get": {
                "security": [
                    {
                        "BearerAuth": []
                    }
                ],
                "produces": [
                    "application/json"
                ],
                "tags": [
                    "reports"
                ],
                "summary": "List the general journal",
                "parameters": [
                    {
                        "description": "From date (YYYY-MM-DD)",
                        "name": "from",
                        "in": "query",
                        "type": "string"
                    },
                    {
                        "description": "To date (YYYY-MM-DD), inclusive",
                        "name": "to",
                        "in": "query",
                        "type": "string"
                    },
                    {
                        "description": "Limit",
                        "name": "limit",
                        "in": "query",
                        "type": "integer",
                        "default": 50
                    },
                    {
                        "description": "Pagination token",
                        "name": "nextToken",
                        "in": "query",
                        "type": "string"
                    }
                ],
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "$ref": "#/definitions/dto.ListEntriesResponse"
                        }
                    }
                }
            }
        },
        "/reports/income-statement": {
            "get": {
                "security": [
                    {
                        "BearerAuth": []
                    }
                ],
                "description": "Revenue and expense accounts over a period, with net income",
                "produces": [
                    "application/json"
                ],
                "tags": [
                    "reports"
                ],
                "summary": "Generate income statement",
                "parameters": [
                    {
                        "description": "From date (YYYY-MM-DD)",
                        "name": "from",
                        "in": "query",
                        "type": "string",
                        "default": "first of the month"
                    },
                    {
                        "description": "To date (YYYY-MM-DD)",
                        "name": "to",
                        "in": "query",
                        "type": "string",
                        "default": "current date"
                    }
                ],
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "$ref": "#/definitions/domain.IncomeStatement"
                        }
                    },
                    "400": {
                        "description": "Invalid input",
                        "schema": {
                            "type": "object",
                            "additionalProperties": {
                                "type": "string"
                            }
                        }
                    }
                }
            }
        },
        "/reports/statement/{code}": {
            "get": {
                "security": [
                    {
                        "BearerAuth": []
                    }
                ],
                "description": "Entries touching one account with a running balance, e.g. customer:<id>",
                "produces": [
                    "application/json"
                ],
                "tags": [
                    "reports"
                ],
                "summary": "Generate an account statement",
                "parameters": [
                    {
                        "description": "Account code",
                        "name": "code",
                        "in": "path",
                        "required": true,
                        "type": "string"
                    },
                    {
                        "description": "From date (YYYY-MM-DD)",
                        "name": "from",
                        "in": "query",
                        "type": "string",
                        "default": "first of the month"
                    },
                    {
                        "description": "To date (YYYY-MM-DD)",
                        "name": "to",
                        "in": "query",
                        "type": "string",
                        "default": "current date"
                    }
                ],
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "$ref": "#/definitions/domain.AccountStatement"
                        }
                    },
                    "400": {
                        "description": "Malformed account code",
                        "schema": {
                            "type": "object",
                            "additionalProperties": {
                                "type": "string"
                            }
                        }
                    }
                }
            }
        },
        "/reports/treasury": {
            "get": {
                "security": [
                    {
                        "BearerAuth": []
                    }
                ],
                "produces": [
                    "application/json"
                ],
                "tags": [
                    "reports"
                ],
                "summary": "Generate treasury report",
                "parameters": [
                    {
                        "description": "From date (YYYY-MM-DD)",
                        "name": "from",
                        "in": "query",
                        "type": "string",
                        "default": "first of the month"
                    },
                    {
                        "description": "To date (YYYY-MM-DD)",
                        "name": "to",
                        "in": "query",
                        "type": "string",
                        "default": "current date"
                    }
                ],
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "$ref": "#/definitions/domain.TreasuryReport"
                        }
                    }
                }
            }
        },
        "/reports/trial-balance": {
            "get": {
                "security": [
                    {
                        "BearerAuth": []
                    }
                ],
                "description": "Per-account debit and credit totals of every entry up to the end of asOf",
                "produces": [
                    "application/json"
                ],
                "tags": [
                    "reports"
                ],
                "summary": "Generate trial balance report",
                "parameters": [
                    {
                        "description": "Report date (YYYY-MM-DD)",
                        "name": "asOf",
                        "in": "query",
                        "type": "string",
                        "default": "current date"
                    }
                ],
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "$ref": "#/definitions/dto.TrialBalanceResponse"
                        }
                    },
                    "400": {
                        "description": "Invalid input",
                        "schema": {
                            "type": "object",
                            "additionalProperties": {
                                "type": "string"
                            }
                        }
                    },
                    "401": {
                        "description": "Unauthorized",
                        "schema": {
                            "type": "object",
                            "additionalProperties": {
                                "type": "string"
                            }
                        }
                    },
                    "500": {
                        "description": "Internal server error",
                        "schema": {
                            "type": "object",
                            "additionalProperties": {
                                "type": "string"
                            }
                        }
                    }
                }
            }
        },
        "/settings": {
            "get": {
                "security": [
                    {
                        "BearerAuth": []
                    }
                ],
                "produces": [
                    "application/json"
                ],
                "tags": [
                    "settings"
                ],
                "summary": "Get posting policies",
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "$ref": "#/definitions/domain.AppSettings"
                        }
                    }
                }
            },
            "put": {
                "security": [
                    {
                        "BearerAuth": []
                    }
                ],
                "consumes": [
                    "application/json"
                ],
                "produces": [
                    "application/json"
                ],
                "tags": [
                    "settings"
                ],
                "summary": "Change posting policies",
                "parameters": [
                    {
                        "description": "Fields to change",
                        "name": "settings",
                        "in": "body",
                        "required": true,
                        "schema": {
                            "$ref": "#/definitions/dto.UpdateSettingsRequest"
                        }
                    }
                ],
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "$ref": "#/definitions/domain.AppSettings"
                        }
                    }
                }
            }
        },
        "/treasury": {
            "get": {
                "security": [
                    {
                        "BearerAuth": []
                    }
                ],
                "produces": [
                    "application/json"
                ],
                "tags": [
                    "treasury"
                ],
                "summary": "Get the treasury balance",
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "$ref": "#/definitions/domain.Treasury"
                        }
                    }
                }
            }
        },
        "/treasury/opening-balance": {
            "post": {
                "security": [
                    {
                        "BearerAuth": []
                    }
                ],
                "description": "Succeeds once. Later calls fail with 409 and change nothing.",
                "consumes": [
                    "application/json"
                ],
                "produces": [
                    "application/json"
                ],
                "tags": [
                    "treasury"
                ],
                "summary": "Set the treasury opening balance",
                "parameters": [
                    {
                        "description": "Opening balance",
                        "name": "opening",
                        "in": "body",
                        "required": true,
                        "schema": {
                            "$ref": "#/definitions/dto.SetOpeningBalanceRequest"
                        }
                    }
                ],
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "$ref": "#/definitions/domain.Treasury"
                        }
                    },
                    "400": {
                        "description": "Invalid input",
                        "schema": {
                            "type": "object",
                            "additionalProperties": {
                                "type": "string"
                            }
                        }
                    },
                    "409": {
                        "description": "Opening balance already set",
                        "schema": {
                            "type": "object",
                            "additionalProperties": {
                                "type": "string"
                            }
                        }
                    }
                }
            }
        },
        "/treasury/transactions": {
            "get": {
                "security": [
                    {
                        "BearerAuth": []
                    }
                ],
                "produces": [
                    "application/json"
                ],
                "tags": [
                    "treasury"
                ],
                "summary": "List the cash subledger",
                "parameters": [
                    {
                        "description": "From date (YYYY-MM-DD)",
                        "name": "from",
                        "in": "query",
                        "type": "string"
                    },
                    {
                        "description": "To date (YYYY-MM-DD), inclusive",
                        "name": "to",
                        "in": "query",
                        "type": "string"
                    },
                    {
                        "description": "Limit",
                        "name": "limit",
                        "in": "query",
                        "type": "integer",
                        "default": 50
                    },
                    {
                        "description": "Offset",
                        "name": "offset",
                        "in": "query",
                        "type": "integer",
                        "default": 0
                    }
                ],
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "type": "array",
                            "items": {
                                "$ref": "#/definitions/domain.TreasuryTransaction"
                            }
                        }
                    }
                }
            }
        },
        "/vouchers": {
            "get": {
                "security": [
                    {
                        "BearerAuth": []
                    }
                ],
                "produces": [
                    "application/json"
                ],
                "tags": [
                    "vouchers"
                ],
                "summary": "List vouchers",
                "parameters": [
                    {
                        "description": "RECEIPT or PAYMENT",
                        "name": "type",
                        "in": "query",
                        "type": "string"
                    },
                    {
                        "description": "CASH or BANK_TRANSFER",
                        "name": "method",
                        "in": "query",
                        "type": "string"
                    },
                    {
                        "description": "Bank account ID",
                        "name": "bankAccountID",
                        "in": "query",
                        "type": "string"
                    },
                    {
                        "description": "From date (YYYY-MM-DD)",
                        "name": "from",
                        "in": "query",
                        "type": "string"
                    },
                    {
                        "description": "To date (YYYY-MM-DD), inclusive",
                        "name": "to",
                        "in": "query",
                        "type": "string"
                    },
                    {
                        "description": "Limit",
                        "name": "limit",
                        "in": "query",
                        "type": "integer",
                        "default": 20
                    },
                    {
                        "description": "Offset",
                        "name": "offset",
                        "in": "query",
                        "type": "integer",
                        "default": 0
                    }
                ],
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "type": "array",
                            "items": {
                                "$ref": "#/definitions/dto.VoucherResponse"
                            }
                        }
                    },
                    "400": {
                        "description": "Invalid input",
                        "schema": {
                            "type": "object",
                            "additionalProperties": {
                                "type": "string"
                            }
                        }
                    }
                }
            },
            "post": {
                "security": [
                    {
                        "BearerAuth": []
                    }
                ],
                "description": "Creates a receipt or payment voucher, moves the treasury or bank balance and posts one ledger entry",
                "consumes": [
                    "application/json"
                ],
                "produces": [
                    "application/json"
                ],
                "tags": [
                    "vouchers"
                ],
                "summary": "Create a voucher",
                "parameters": [
                    {
                        "description": "Voucher details",
                        "name": "voucher",
                        "in": "body",
                        "required": true,
                        "schema": {
                            "$ref": "#/definitions/dto.CreateVoucherRequest"
                        }
                    }
                ],
                "responses": {
                    "201": {
                        "description": "Created",
                        "schema": {
                            "$ref": "#/definitions/dto.VoucherResponse"
                        }
                    },
                    "400": {
                        "description": "Invalid input",
                        "schema": {
                            "type": "object",
                            "additionalProperties": {
                                "type": "string"
                            }
                        }
                    },
                    "401": {
                        "description": "Unauthorized",
                        "schema": {
                            "type": "object",
                            "additionalProperties": {
                                "type": "string"
                            }
                        }
                    },
                    "404": {
                        "description": "Referenced party, category or bank account not found",
                        "schema": {
                            "type": "object",
                            "additionalProperties": {
                                "type": "string"
                            }
                        }
                    },
                    "422": {
                        "description": "Insufficient balance",
                        "schema": {
                            "type": "object",
                            "additionalProperties": {
                                "type": "string"
                            }
                        }
                    },
                    "500": {
                        "description": "Internal server error",
                        "schema": {
                            "type": "object",
                            "additionalProperties": {
                                "type": "string"
                            }
                        }
                    }
                }
            }
        },
        "/vouchers/{id}": {
            "get": {
                "security": [
                    {
                        "BearerAuth": []
                    }
                ],
                "produces": [
                    "application/json"
                ],
                "tags": [
                    "vouchers"
                ],
                "summary": "Get a voucher",
                "parameters": [
                    {
                        "description": "Voucher ID",
                        "name": "id",
                        "in": "path",
                        "required": true,
                        "type": "string"
                    }
                ],
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "$ref": "#/definitions/dto.VoucherResponse"
                        }
                    },
                    "404": {
                        "description": "Voucher not found",
                        "schema": {
                            "type": "object",
                            "additionalProperties": {
                                "type": "string"
                            }
                        }
                    }
                }
            },
            "patch": {
                "security": [
                    {
                        "BearerAuth": []
                    }
                ],
                "description": "Rewrites editable fields. Balances and the ledger keep the effect posted at creation.",
                "consumes": [
                    "application/json"
                ],
                "produces": [
                    "application/json"
                ],
                "tags": [
                    "vouchers"
                ],
                "summary": "Update a voucher",
                "parameters": [
                    {
                        "description": "Voucher ID",
                        "name": "id",
                        "in": "path",
                        "required": true,
                        "type": "string"
                    },
                    {
                        "description": "Fields to change",
                        "name": "voucher",
                        "in": "body",
                        "required": true,
                        "schema": {
                            "$ref": "#/definitions/dto.UpdateVoucherRequest"
                        }
                    }
                ],
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "$ref": "#/definitions/dto.VoucherResponse"
                        }
                    },
                    "400": {
                        "description": "Invalid input",
                        "schema": {
                            "type": "object",
                            "additionalProperties": {
                                "type": "string"
                            }
                        }
                    },
                    "404": {
                        "description": "Voucher not found",
                        "schema": {
                            "type": "object",
                            "additionalProperties": {
                                "type": "string"
                            }
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
                "description": "Reverses the balance effect and deletes the voucher. The ledger entry stays.",
                "tags": [
                    "vouchers"
                ],
                "summary": "Remove a voucher",
                "parameters": [
                    {
                        "description": "Voucher ID",
                        "name": "id",
                        "in": "path",
                        "required": true,
                        "type": "string"
                    }
                ],
                "responses": {
                    "204": {
                        "description": "No Content"
                    },
                    "404": {
                        "description": "Voucher not found",
                        "schema": {
                            "type": "object",
                            "additionalProperties": {
                                "type": "string"
                            }
                        }
                    }
                }
            }
        }
    },
    "definitions": {
        "domain.AccountAmount": {
            "type": "object",
            "properties": {
                "account": {
                    "type": "string"
                },
                "name": {
                    "type": "string"
                },
                "netAmount": {
                    "type": "number"
                }
            }
        },
        "domain.AccountKind": {
            "type": "string",
            "enum": [
                "treasury",
                "bank",
                "customer",
                "agent",
                "employee",
                "expense",
                "revenue",
                "equity",
                "other"
            ],
            "x-enum-varnames": [
                "KindTreasury",
                "KindBank",
                "KindCustomer",
                "KindAgent",
                "KindEmployee",
                "KindExpense",
                "KindRevenue",
                "KindEquity",
                "KindOther"
            ]
        },
        "domain.AccountRef": {
            "type": "object",
            "properties": {
                "id": {
                    "type": "string"
                },
                "kind": {
                    "$ref": "#/definitions/domain.AccountKind"
                }
            }
        },
        "domain.AccountStatement": {
            "type": "object",
            "properties": {
                "account": {
                    "type": "string"
                },
                "accountName": {
                    "type": "string"
                },
                "closingBalance": {
                    "type": "number"
                },
                "from": {
                    "type": "string"
                },
                "lines": {
                    "type": "array",
                    "items": {
                        "$ref": "#/definitions/domain.StatementLine"
                    }
                },
                "openingBalance": {
                    "type": "number"
                },
                "to": {
                    "type": "string"
                }
            }
        },
        "domain.AppSettings": {
            "type": "object",
            "properties": {
                "preventNegativeBank": {
                    "type": "boolean"
                },
                "preventNegativeTreasury": {
                    "type": "boolean"
                },
                "updatedAt": {
                    "type": "string"
                },
                "updatedBy": {
                    "type": "string"
                }
            }
        },
        "domain.BankAccount": {
            "type": "object",
            "properties": {
                "accountNo": {
                    "type": "string"
                },
                "bankAccountID": {
                    "type": "string"
                },
                "bankID": {
                    "type": "string"
                },
                "createdAt": {
                    "type": "string"
                },
                "createdBy": {
                    "type": "string"
                },
                "currentBalance": {
                    "type": "number"
                },
                "lastUpdatedAt": {
                    "type": "string"
                },
                "lastUpdatedBy": {
                    "type": "string"
                },
                "name": {
                    "type": "string"
                },
                "openingBalance": {
                    "type": "number"
                }
            }
        },
        "domain.BankReport": {
            "type": "object",
            "properties": {
                "bankAccount": {
                    "$ref": "#/definitions/domain.BankAccount"
                },
                "from": {
                    "type": "string"
                },
                "to": {
                    "type": "string"
                },
                "totalPayments": {
                    "type": "number"
                },
                "totalReceipts": {
                    "type": "number"
                },
                "vouchers": {
                    "type": "array",
                    "items": {
                        "$ref": "#/definitions/domain.Voucher"
                    }
                }
            }
        },
        "domain.IncomeStatement": {
            "type": "object",
            "properties": {
                "expenses": {
                    "type": "array",
                    "items": {
                        "$ref": "#/definitions/domain.AccountAmount"
                    }
                },
                "from": {
                    "type": "string"
                },
                "netIncome": {
                    "type": "number"
                },
                "revenue": {
                    "type": "array",
                    "items": {
                        "$ref": "#/definitions/domain.AccountAmount"
                    }
                },
                "to": {
                    "type": "string"
                },
                "totalExpenses": {
                    "type": "number"
                },
                "totalRevenue": {
                    "type": "number"
                }
            }
        },
        "domain.InvoiceType": {
            "type": "string",
            "enum": [
                "EXPORT",
                "IMPORT",
                "TRANSIT",
                "FREE_ZONE"
            ],
            "x-enum-varnames": [
                "InvoiceExport",
                "InvoiceImport",
                "InvoiceTransit",
                "InvoiceFreeZone"
            ]
        },
        "domain.LedgerEntry": {
            "type": "object",
            "properties": {
                "amount": {
                    "type": "number"
                },
                "createdAt": {
                    "type": "string"
                },
                "createdBy": {
                    "type": "string"
                },
                "creditAccount": {
                    "$ref": "#/definitions/domain.AccountRef"
                },
                "currencyCode": {
                    "type": "string"
                },
                "debitAccount": {
                    "$ref": "#/definitions/domain.AccountRef"
                },
                "description": {
                    "type": "string"
                },
                "entryID": {
                    "type": "string"
                },
                "exchangeRate": {
                    "type": "number"
                },
                "sourceID": {
                    "type": "string"
                },
                "sourceType": {
                    "$ref": "#/definitions/domain.SourceType"
                }
            }
        },
        "domain.PartyType": {
            "type": "string",
            "enum": [
                "CUSTOMER",
                "EMPLOYEE",
                "AGENT",
                "OTHER"
            ],
            "x-enum-varnames": [
                "PartyCustomer",
                "PartyEmployee",
                "PartyAgent",
                "PartyOther"
            ]
        },
        "domain.PaymentMethod": {
            "type": "string",
            "enum": [
                "CASH",
                "BANK_TRANSFER"
            ],
            "x-enum-varnames": [
                "MethodCash",
                "MethodBankTransfer"
            ]
        },
        "domain.PayrollItem": {
            "type": "object",
            "properties": {
                "allowances": {
                    "type": "number"
                },
                "base": {
                    "type": "number"
                },
                "deductions": {
                    "type": "number"
                },
                "employeeID": {
                    "type": "string"
                },
                "employeeName": {
                    "type": "string"
                },
                "itemID": {
                    "type": "string"
                },
                "net": {
                    "type": "number"
                },
                "runID": {
                    "type": "string"
                },
                "voucherID": {
                    "type": "string"
                }
            }
        },
        "domain.PayrollRun": {
            "type": "object",
            "properties": {
                "approvedAt": {
                    "type": "string"
                },
                "approvedBy": {
                    "type": "string"
                },
                "bankAccountID": {
                    "type": "string"
                },
                "createdAt": {
                    "type": "string"
                },
                "createdBy": {
                    "type": "string"
                },
                "items": {
                    "type": "array",
                    "items": {
                        "$ref": "#/definitions/domain.PayrollItem"
                    }
                },
                "lastUpdatedAt": {
                    "type": "string"
                },
                "lastUpdatedBy": {
                    "type": "string"
                },
                "month": {
                    "type": "string"
                },
                "paymentMethod": {
                    "$ref": "#/definitions/domain.PaymentMethod"
                },
                "runID": {
                    "type": "string"
                },
                "status": {
                    "$ref": "#/definitions/domain.PayrollStatus"
                },
                "totalNet": {
                    "type": "number"
                }
            }
        },
        "domain.PayrollStatus": {
            "type": "string",
            "enum": [
                "DRAFT",
                "APPROVED"
            ],
            "x-enum-varnames": [
                "PayrollDraft",
                "PayrollApproved"
            ]
        },
        "domain.PostedEffect": {
            "type": "object",
            "properties": {
                "amount": {
                    "type": "number"
                },
                "bankAccountID": {
                    "type": "string"
                },
                "method": {
                    "$ref": "#/definitions/domain.PaymentMethod"
                }
            }
        },
        "domain.SourceType": {
            "type": "string",
            "enum": [
                "VOUCHER",
                "INVOICE",
                "TRIP",
                "ADDITIONAL_FEE",
                "PAYROLL",
                "OPENING_BALANCE"
            ],
            "x-enum-varnames": [
                "SourceVoucher",
                "SourceInvoice",
                "SourceTrip",
                "SourceAdditionalFee",
                "SourcePayroll",
                "SourceOpeningBalance"
            ]
        },
        "domain.StatementLine": {
            "type": "object",
            "properties": {
                "counterAccount": {
                    "type": "string"
                },
                "counterName": {
                    "type": "string"
                },
                "credit": {
                    "type": "number"
                },
                "debit": {
                    "type": "number"
                },
                "entry": {
                    "$ref": "#/definitions/domain.LedgerEntry"
                },
                "runningBalance": {
                    "type": "number"
                }
            }
        },
        "domain.Treasury": {
            "type": "object",
            "properties": {
                "currentBalance": {
                    "type": "number"
                },
                "lastUpdatedAt": {
                    "type": "string"
                },
                "lastUpdatedBy": {
                    "type": "string"
                },
                "openingBalance": {
                    "type": "number"
                },
                "openingSetAt": {
                    "type": "string"
                },
                "openingSetBy": {
                    "type": "string"
                }
            }
        },
        "domain.TreasuryMovement": {
            "type": "string",
            "enum": [
                "IN",
                "OUT"
            ],
            "x-enum-varnames": [
                "MovementIn",
                "MovementOut"
            ]
        },
        "domain.TreasuryReport": {
            "type": "object",
            "properties": {
                "closingBalance": {
                    "type": "number"
                },
                "from": {
                    "type": "string"
                },
                "openingBalance": {
                    "type": "number"
                },
                "to": {
                    "type": "string"
                },
                "totalIn": {
                    "type": "number"
                },
                "totalOut": {
                    "type": "number"
                },
                "transactions": {
                    "type": "array",
                    "items": {
                        "$ref": "#/definitions/domain.TreasuryTransaction"
                    }
                }
            }
        },
        "domain.TreasuryTransaction": {
            "type": "object",
            "properties": {
                "amount": {
                    "type": "number"
                },
                "balanceAfter": {
                    "type": "number"
                },
                "createdAt": {
                    "type": "string"
                },
                "createdBy": {
                    "type": "string"
                },
                "date": {
                    "type": "string"
                },
                "note": {
                    "type": "string"
                },
                "transactionID": {
                    "type": "string"
                },
                "type": {
                    "$ref": "#/definitions/domain.TreasuryMovement"
                },
                "voucherID": {
                    "type": "string"
                }
            }
        },
        "domain.TrialBalanceRow": {
            "type": "object",
            "properties": {
                "account": {
                    "type": "string"
                },
                "accountName": {
                    "type": "string"
                },
                "balance": {
                    "type": "number"
                },
                "credit": {
                    "type": "number"
                },
                "debit": {
                    "type": "number"
                }
            }
        },
        "domain.Voucher": {
            "type": "object",
            "properties": {
                "amount": {
                    "type": "number"
                },
                "bankAccountID": {
                    "type": "string"
                },
                "categoryID": {
                    "type": "string"
                },
                "code": {
                    "type": "string"
                },
                "createdAt": {
                    "type": "string"
                },
                "createdBy": {
                    "type": "string"
                },
                "date": {
                    "type": "string"
                },
                "lastUpdatedAt": {
                    "type": "string"
                },
                "lastUpdatedBy": {
                    "type": "string"
                },
                "method": {
                    "$ref": "#/definitions/domain.PaymentMethod"
                },
                "note": {
                    "type": "string"
                },
                "partyID": {
                    "type": "string"
                },
                "partyName": {
                    "type": "string"
                },
                "partyType": {
                    "$ref": "#/definitions/domain.PartyType"
                },
                "payrollRunID": {
                    "type": "string"
                },
                "posted": {
                    "$ref": "#/definitions/domain.PostedEffect"
                },
                "type": {
                    "$ref": "#/definitions/domain.VoucherType"
                },
                "voucherID": {
                    "type": "string"
                }
            }
        },
        "domain.VoucherType": {
            "type": "string",
            "enum": [
                "RECEIPT",
                "PAYMENT"
            ],
            "x-enum-varnames": [
                "Receipt",
                "Payment"
            ]
        },
        "dto.AccountBalanceResponse": {
            "type": "object",
            "properties": {
                "account": {
                    "type": "string"
                },
                "balance": {
                    "type": "number"
                },
                "name": {
                    "type": "string"
                }
            }
        },
        "dto.ApprovePayrollRequest": {
            "type": "object",
            "properties": {
                "bankAccountID": {
                    "type": "string"
                },
                "paymentMethod": {
                    "$ref": "#/definitions/domain.PaymentMethod"
                }
            }
        },
        "dto.CreateBankAccountRequest": {
            "type": "object",
            "required": [
                "bankID",
                "accountNo"
            ],
            "properties": {
                "accountNo": {
                    "type": "string"
                },
                "bankID": {
                    "type": "string"
                },
                "name": {
                    "type": "string"
                },
                "openingBalance": {
                    "type": "number"
                }
            }
        },
        "dto.CreatePayrollRunRequest": {
            "type": "object",
            "required": [
                "month"
            ],
            "properties": {
                "month": {
                    "type": "string"
                }
            }
        },
        "dto.CreateVoucherRequest": {
            "type": "object",
            "required": [
                "type",
                "partyType",
                "method"
            ],
            "properties": {
                "amount": {
                    "type": "number"
                },
                "bankAccountID": {
                    "type": "string"
                },
                "categoryID": {
                    "type": "string"
                },
                "date": {
                    "type": "string"
                },
                "method": {
                    "$ref": "#/definitions/domain.PaymentMethod"
                },
                "note": {
                    "type": "string"
                },
                "partyID": {
                    "type": "string"
                },
                "partyName": {
                    "type": "string"
                },
                "partyType": {
                    "$ref": "#/definitions/domain.PartyType"
                },
                "type": {
                    "$ref": "#/definitions/domain.VoucherType"
                }
            }
        },
        "dto.InvoicePostingResponse": {
            "type": "object",
            "properties": {
                "entry": {
                    "$ref": "#/definitions/dto.LedgerEntryResponse"
                },
                "invoiceCode": {
                    "type": "string"
                }
            }
        },
        "dto.LedgerEntryResponse": {
            "type": "object",
            "properties": {
                "amount": {
                    "type": "number"
                },
                "createdAt": {
                    "type": "string"
                },
                "createdBy": {
                    "type": "string"
                },
                "creditAccount": {
                    "type": "string"
                },
                "currencyCode": {
                    "type": "string"
                },
                "debitAccount": {
                    "type": "string"
                },
                "description": {
                    "type": "string"
                },
                "entryID": {
                    "type": "string"
                },
                "exchangeRate": {
                    "type": "number"
                },
                "sourceID": {
                    "type": "string"
                },
                "sourceType": {
                    "$ref": "#/definitions/domain.SourceType"
                }
            }
        },
        "dto.ListEntriesResponse": {
            "type": "object",
            "properties": {
                "entries": {
                    "type": "array",
                    "items": {
                        "$ref": "#/definitions/dto.LedgerEntryResponse"
                    }
                },
                "nextToken": {
                    "type": "string"
                }
            }
        },
        "dto.PayrollItemRequest": {
            "type": "object",
            "required": [
                "employeeID"
            ],
            "properties": {
                "allowances": {
                    "type": "number"
                },
                "base": {
                    "type": "number"
                },
                "deductions": {
                    "type": "number"
                },
                "employeeID": {
                    "type": "string"
                }
            }
        },
        "dto.PostAdditionalFeeRequest": {
            "type": "object",
            "required": [
                "feeID",
                "agentID"
            ],
            "properties": {
                "agentID": {
                    "type": "string"
                },
                "amount": {
                    "type": "number"
                },
                "customerID": {
                    "type": "string"
                },
                "description": {
                    "type": "string"
                },
                "feeID": {
                    "type": "string"
                }
            }
        },
        "dto.PostEntryRequest": {
            "type": "object",
            "required": [
                "sourceType",
                "sourceID",
                "debitAccount",
                "creditAccount"
            ],
            "properties": {
                "amount": {
                    "type": "number"
                },
                "creditAccount": {
                    "type": "string"
                },
                "currencyCode": {
                    "type": "string"
                },
                "debitAccount": {
                    "type": "string"
                },
                "description": {
                    "type": "string"
                },
                "exchangeRate": {
                    "type": "number"
                },
                "sourceID": {
                    "type": "string"
                },
                "sourceType": {
                    "$ref": "#/definitions/domain.SourceType"
                }
            }
        },
        "dto.PostInvoiceRequest": {
            "type": "object",
            "required": [
                "invoiceID",
                "invoiceType",
                "customerID"
            ],
            "properties": {
                "amount": {
                    "type": "number"
                },
                "customerID": {
                    "type": "string"
                },
                "date": {
                    "type": "string"
                },
                "description": {
                    "type": "string"
                },
                "invoiceID": {
                    "type": "string"
                },
                "invoiceType": {
                    "$ref": "#/definitions/domain.InvoiceType"
                }
            }
        },
        "dto.PostTripRequest": {
            "type": "object",
            "required": [
                "tripID",
                "agentID"
            ],
            "properties": {
                "agentID": {
                    "type": "string"
                },
                "amount": {
                    "type": "number"
                },
                "description": {
                    "type": "string"
                },
                "tripID": {
                    "type": "string"
                }
            }
        },
        "dto.ReplacePayrollItemsRequest": {
            "type": "object",
            "required": [
                "items"
            ],
            "properties": {
                "items": {
                    "type": "array",
                    "items": {
                        "$ref": "#/definitions/dto.PayrollItemRequest"
                    }
                }
            }
        },
        "dto.SetOpeningBalanceRequest": {
            "type": "object",
            "properties": {
                "amount": {
                    "type": "number"
                }
            }
        },
        "dto.TrialBalanceResponse": {
            "type": "object",
            "properties": {
                "asOf": {
                    "type": "string"
                },
                "rows": {
                    "type": "array",
                    "items": {
                        "$ref": "#/definitions/domain.TrialBalanceRow"
                    }
                },
                "totals": {
                    "$ref": "#/definitions/dto.TrialBalanceTotals"
                }
            }
        },
        "dto.TrialBalanceTotals": {
            "type": "object",
            "properties": {
                "credit": {
                    "type": "number"
                },
                "debit": {
                    "type": "number"
                }
            }
        },
        "dto.UpdateSettingsRequest": {
            "type": "object",
            "properties": {
                "preventNegativeBank": {
                    "type": "boolean"
                },
                "preventNegativeTreasury": {
                    "type": "boolean"
                }
            }
        },
        "dto.UpdateVoucherRequest": {
            "type": "object",
            "properties": {
                "amount": {
                    "type": "number"
                },
                "bankAccountID": {
                    "type": "string"
                },
                "categoryID": {
                    "type": "string"
                },
                "date": {
                    "type": "string"
                },
                "method": {
                    "$ref": "#/definitions/domain.PaymentMethod"
                },
                "note": {
                    "type": "string"
                },
                "partyName": {
                    "type": "string"
                }
            }
        },
        "dto.VoucherResponse": {
            "type": "object",
            "properties": {
                "amount": {
                    "type": "number"
                },
                "bankAccountID": {
                    "type": "string"
                },
                "categoryID": {
                    "type": "string"
                },
                "code": {
                    "type": "string"
                },
                "createdAt": {
                    "type": "string"
                },
                "createdBy": {
                    "type": "string"
                },
                "date": {
                    "type": "string"
                },
                "lastUpdatedAt": {
                    "type": "string"
                },
                "lastUpdatedBy": {
                    "type": "string"
                },
                "method": {
                    "$ref": "#/definitions/domain.PaymentMethod"
                },
                "note": {
                    "type": "string"
                },
                "partyID": {
                    "type": "string"
                },
                "partyName": {
                    "type": "string"
                },
                "partyType": {
                    "$ref": "#/definitions/domain.PartyType"
                },
                "payrollRunID": {
                    "type": "string"
                },
                "type": {
                    "$ref": "#/definitions/domain.VoucherType"
                },
                "voucherID": {
                    "type": "string"
                }
            }
        }
    },
    "securityDefinitions": {
        "BearerAuth": {
            "description": "Type \"Bearer\" followed by a space and JWT token.",
            "type": "apiKey",
            "name": "Authorization",
            "in": "header"
        }
    }
}
`

// SwaggerInfo holds exported Swagger Info so clients can modify it
var SwaggerInfo = &swag.Spec{
	Version:          "1.0",
	Host:             "localhost:8080",
	BasePath:         "/api/v1",
	Schemes:          []string{},
	Title:            "Customs Clearance Ledger API",
	Description:      "Accounting core of the customs clearance ERP: vouchers, payroll settlement, treasury and reports.",
	InfoInstanceName: "swagger",
	SwaggerTemplate:  docTemplate,
	LeftDelim:        "{{",
	RightDelim:       "}}",
}

func init() {
	swag.Register(SwaggerInfo.InstanceName(), SwaggerInfo)
}
