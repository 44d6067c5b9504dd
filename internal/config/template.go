package config

// DefaultConfigTemplate returns the default config as a YAML string with comments.
func DefaultConfigTemplate() string {
	return `# restodesk configuration

# REST backend
backend:
  base_url: http://localhost:3001/api
  # token: <bearer token>   # or set RESTODESK_BACKEND_TOKEN; 'restodesk token' mints one for the dev server
  timeout: 15s

# Tenant ids sent with scoped requests. Screens that need a missing id stay disabled.
session:
  # company_id: "1"
  # year_id: "2025"
  # hotel_id: "1"

ui:
  page_size: 10
  locale: en                   # BCP 47 tag used for locale-aware sorting
  show_status_bar: true
  # markdown_style: dark       # help overlay style: "dark" (default) or "light"
  # discard_stale_fetches: false  # drop list responses that resolve after a newer one

# Theme: preset plus optional token overrides
theme:
  # preset: nord              # default, nord, high-contrast
  # colors:
  #   status.error: "#FF0000"
  #   table.header: "#54A0FF"

lookups:
  ttl: 5m                      # how long state/city/account lookups are cached per screen

export:
  dir: .
  format: csv                  # csv, json, yaml

# Per-screen overrides, keyed by screen name (see 'restodesk screens')
# screens:
#   ledgers:
#     page_size: 20
#     sort: LedgerNo desc
#   tables:
#     debounce: 500ms
#   tax-configs:
#     hidden: true

# Distributed tracing
# tracing:
#   enabled: false
#   exporter: file             # none, file, stdout, otlp
#   file_path: ~/.config/restodesk/traces/traces.jsonl
#   otlp_endpoint: localhost:4317
#   sample_rate: 1.0

# Development backend started by 'restodesk serve'
server:
  addr: 127.0.0.1:3001
  db_path: restodesk.db
  # jwt_secret: change-me      # or RESTODESK_SERVER_JWT_SECRET
  token_ttl: 12h
  # seed: true                 # load sample states, cities and masters on first start
`
}
