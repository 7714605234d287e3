// Package ports declares the interfaces between layers. CatalogService is
// implemented by the application layer and called by the HTTP and terminal
// front ends. CampaignClient and Cache are implemented by outbound adapters
// and called by the application layer.
package ports
