package store

// Built-in fallbacks used when no external rule or settings file is
// present. They are parsed through the same YAML path as user files so
// both sources behave identically.

// DefaultCategoriesYAML maps keywords to categories. Order matters:
// the first matching keyword wins.
const DefaultCategoriesYAML = `categories:
  - name: Groceries
    keywords: [kroger, whole foods, trader joe, walmart, costco]
  - name: Dining
    keywords: [mcdonald, chipotle, starbucks, taco bell, pizza, panera]
  - name: Transport
    keywords: [uber, lyft, shell, exxon, chevron, mobil, gas]
  - name: Shopping
    keywords: [amazon, target, best buy, nike, adidas]
  - name: Subscriptions
    keywords: [netflix, spotify, apple, google storage, prime]
  - name: Utilities
    keywords: [verizon, xfinity, comcast, at&t, t-mobile, spectrum]
  - name: Health
    keywords: [cvs, walgreens, rite aid]
  - name: Education
    keywords: [udemy, coursera, khan academy]
  - name: Income
    keywords: [payroll, paycheck, direct deposit, employer]
`

// DefaultSettingsYAML holds the currency symbol and the keywords that
// mark a description as income-like.
const DefaultSettingsYAML = `currency: USD
income_keywords: [payroll, paycheck, employer, direct deposit]
`
