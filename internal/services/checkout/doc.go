/*
Package checkout implements the checkout flow: bank selection behind an
authentication gate, card entry, and the two-step submission against the
commerce backend (create order, then submit payment).

The flow keeps only ephemeral per-session state (selected bank and the
processing flag). Everything external it consumes (cart contents, the
authenticated user, the stored auth token) arrives through an injected
Session and the collaborator interfaces, so the flow can be exercised in
isolation with fakes.

Usage:

	svc := checkout.NewService(registry, cartSvc, gatewayClient, tokenStore, logger, m)

	view := svc.View(ctx, sess)
	view, err := svc.SelectBank(ctx, sess, "bank_b")
	receipt, err := svc.Pay(ctx, sess, checkout.CardInput{
	    Number: "4111111111111111",
	    Expiry: "1225",
	    CVV:    "123",
	})

Failures surface as *FlowError values carrying the user-facing message
(the backend's detail text when it sent one), an optional redirect, and
whether the client should open the login prompt.
*/
package checkout
