package custody

// Version is the current release of the custody-go module. It is sent
// in the User-Agent header of every API request.
const Version = "0.1.0"
