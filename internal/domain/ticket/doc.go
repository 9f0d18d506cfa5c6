// Package ticket contains the Ticket bounded context.
// This context is responsible for the printer-ready output records
// produced by the formatting engine, the printer configurations they
// target, and the render formats available per document family.
package ticket
