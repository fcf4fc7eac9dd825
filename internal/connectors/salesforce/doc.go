// Package salesforce implements the org connection over the REST query API.
//
// Catalog lookups go to the Tooling API query endpoint and free-form SOQL
// goes to the data API query endpoint. Requests are authenticated with an
// oauth2 token source and throttled by a RateLimiter that tracks the
// Sforce-Limit-Info response header.
package salesforce
