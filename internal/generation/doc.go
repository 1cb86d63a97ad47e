// Package generation provides slide content acquisition: building the
// instruction for an external text-generation service, parsing its
// free-form response into validated slide records, and synthesizing
// deterministic fallback content when the service is unavailable or its
// output cannot be used. It abstracts the details of LLM API integration,
// allowing the application to obtain slide content without coupling to a
// specific external service.
package generation
