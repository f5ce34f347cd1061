package handler

const oopsErr = "Oops! Something went wrong. Please try again later."
