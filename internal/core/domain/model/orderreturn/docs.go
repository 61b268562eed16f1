// Package orderreturn contains the Return aggregate and its owned
// ReturnItem entities.
//
// A Return records which order or swap line items a customer sends back,
// the refund owed, and where the return sits in its lifecycle:
//
//	requested -> {canceled, received, requires_action}
//
// Canceled and Received are terminal; RequiresAction marks a receive
// whose items mismatched the request and can still be corrected by a
// follow-up receive. All transition rules live on the Status value
// object and are enforced exclusively through the aggregate's methods.
package orderreturn
