// Package baseline reads and writes the authoritative menu document.
//
// The baseline is a JSON document of the form
//
//	{
//	  "menu": ["Kung Pao Chicken", "Mapo Tofu"],
//	  "lastUpdated": "2025-01-01T12:00:00.000Z"
//	}
//
// A Source fetches it (from object storage or a local file). The service has no write
// access to the baseline itself: an Exporter publishes the updated document somewhere
// the operator can pick it up and commit it by hand.
package baseline
